package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"romaneio_api/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	driversCPFIndex         = "cpf-index"
	deliveriesManifestIndex = "romaneio_id-index"

	batchWriteLimit    = 25
	maxBatchAttempts   = 5
	maxSweepPasses     = 3
	tableCreateTimeout = 2 * time.Minute
)

// DynamoAPI is the subset of *dynamodb.Client used by the gateways.
type DynamoAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, in *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	BatchWriteItem(ctx context.Context, in *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
	DescribeTable(ctx context.Context, in *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	CreateTable(ctx context.Context, in *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

var _ DynamoAPI = (*dynamodb.Client)(nil)

// DynamoTables names the tables backing the DynamoDB gateways.
//
// Table requirements:
//   - Drivers: PK id (N), GSI cpf-index on cpf (S)
//   - Manifests: PK id (N)
//   - Deliveries: PK id (N), GSI romaneio_id-index on romaneio_id (N)
//   - Counters: PK name (S), numeric attribute seq
type DynamoTables struct {
	Drivers    string
	Manifests  string
	Deliveries string
	Counters   string
}

func DynamoTablesFromConfig(cfg config.DynamoDBConfig) DynamoTables {
	return DynamoTables{
		Drivers:    cfg.DriversTable,
		Manifests:  cfg.ManifestsTable,
		Deliveries: cfg.DeliveriesTable,
		Counters:   cfg.CountersTable,
	}
}

type dynamoStore struct {
	ddb    DynamoAPI
	tables DynamoTables
}

// NewDynamoRepositories builds the three gateways over one client.
func NewDynamoRepositories(ddb DynamoAPI, tables DynamoTables) (*DriverDynamoRepository, *ManifestDynamoRepository, *DeliveryDynamoRepository) {
	s := &dynamoStore{ddb: ddb, tables: tables}
	return &DriverDynamoRepository{s: s}, &ManifestDynamoRepository{s: s}, &DeliveryDynamoRepository{s: s}
}

// nextID atomically increments the named sequence in the counters table.
func (s *dynamoStore) nextID(ctx context.Context, sequence string) (int64, error) {
	out, err := s.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.tables.Counters),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: sequence},
		},
		UpdateExpression:         aws.String("ADD #seq :one"),
		ExpressionAttributeNames: map[string]string{"#seq": "seq"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, fmt.Errorf("next id %s: %w", sequence, err)
	}
	seqAttr, ok := out.Attributes["seq"]
	if !ok {
		return 0, fmt.Errorf("next id %s: counter not returned", sequence)
	}
	var seq int64
	if err := attributevalue.Unmarshal(seqAttr, &seq); err != nil {
		return 0, fmt.Errorf("next id %s: %w", sequence, err)
	}
	return seq, nil
}

func (s *dynamoStore) getItem(ctx context.Context, table string, id int64, out any) (bool, error) {
	res, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(table),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	if len(res.Item) == 0 {
		return false, nil
	}
	return true, attributevalue.UnmarshalMap(res.Item, out)
}

func (s *dynamoStore) exists(ctx context.Context, table string, id int64) (bool, error) {
	res, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:                aws.String(table),
		Key:                      idKey(id),
		ProjectionExpression:     aws.String("#id"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
		ConsistentRead:           aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	return len(res.Item) > 0, nil
}

func (s *dynamoStore) put(ctx context.Context, table string, item any) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(table),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	return err
}

// update applies a SET expression to an existing item and decodes the new
// image into out. It reports false when the item does not exist.
func (s *dynamoStore) update(
	ctx context.Context,
	table string,
	id int64,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
	out any,
) (bool, error) {
	now := formatTime(time.Now())
	updateExpr, values, names := build(now)

	res, err := s.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(table),
		Key:                       idKey(id),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	if len(res.Attributes) == 0 {
		return false, nil
	}
	return true, attributevalue.UnmarshalMap(res.Attributes, out)
}

func (s *dynamoStore) scanAll(ctx context.Context, table string, visit func(items []map[string]types.AttributeValue) error) error {
	p := dynamodb.NewScanPaginator(s.ddb, &dynamodb.ScanInput{TableName: aws.String(table)})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return err
		}
		if err := visit(page.Items); err != nil {
			return err
		}
	}
	return nil
}

// deliveriesOf returns the deliveries of a manifest ordered by id.
func (s *dynamoStore) deliveriesOf(ctx context.Context, manifestID int64) ([]deliveryItem, error) {
	p := dynamodb.NewQueryPaginator(s.ddb, &dynamodb.QueryInput{
		TableName:                aws.String(s.tables.Deliveries),
		IndexName:                aws.String(deliveriesManifestIndex),
		KeyConditionExpression:   aws.String("#mid = :mid"),
		ExpressionAttributeNames: map[string]string{"#mid": "romaneio_id"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":mid": numberAttr(manifestID),
		},
	})

	items := make([]deliveryItem, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var batch []deliveryItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, err
		}
		items = append(items, batch...)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

// deleteDeliveriesOf removes every delivery of a manifest with batched deletes.
// The romaneio_id index is eventually consistent, so it keeps querying until a
// pass finds nothing, up to maxSweepPasses.
func (s *dynamoStore) deleteDeliveriesOf(ctx context.Context, manifestID int64) (int, error) {
	deleted := make(map[int64]struct{})
	for pass := 0; pass < maxSweepPasses; pass++ {
		items, err := s.deliveriesOf(ctx, manifestID)
		if err != nil {
			return 0, err
		}
		if len(items) == 0 {
			break
		}
		if err := s.deleteDeliveries(ctx, items); err != nil {
			return 0, err
		}
		for _, it := range items {
			deleted[it.ID] = struct{}{}
		}
	}
	return len(deleted), nil
}

func (s *dynamoStore) deleteDeliveries(ctx context.Context, items []deliveryItem) error {
	for start := 0; start < len(items); start += batchWriteLimit {
		end := min(start+batchWriteLimit, len(items))
		reqs := make([]types.WriteRequest, 0, end-start)
		for _, it := range items[start:end] {
			reqs = append(reqs, types.WriteRequest{DeleteRequest: &types.DeleteRequest{Key: idKey(it.ID)}})
		}
		if err := s.batchWrite(ctx, map[string][]types.WriteRequest{s.tables.Deliveries: reqs}); err != nil {
			return err
		}
	}
	return nil
}

func (s *dynamoStore) batchWrite(ctx context.Context, pending map[string][]types.WriteRequest) error {
	for attempt := 1; len(pending) > 0; attempt++ {
		if attempt > maxBatchAttempts {
			return fmt.Errorf("batch write: unprocessed items after %d attempts", maxBatchAttempts)
		}
		out, err := s.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{RequestItems: pending})
		if err != nil {
			return err
		}
		pending = out.UnprocessedItems
		if len(pending) == 0 {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * 50 * time.Millisecond):
		}
	}
	return nil
}

// EnsureDynamoTables creates any missing table and waits until it is active.
func EnsureDynamoTables(ctx context.Context, ddb DynamoAPI, tables DynamoTables) error {
	for _, table := range dynamoTableSpecs(tables) {
		_, err := ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: table.TableName})
		if err == nil {
			continue
		}
		var nf *types.ResourceNotFoundException
		if !errors.As(err, &nf) {
			return fmt.Errorf("describe table %s: %w", aws.ToString(table.TableName), err)
		}

		if _, err := ddb.CreateTable(ctx, table); err != nil {
			return fmt.Errorf("create table %s: %w", aws.ToString(table.TableName), err)
		}
		waiter := dynamodb.NewTableExistsWaiter(ddb)
		if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: table.TableName}, tableCreateTimeout); err != nil {
			return fmt.Errorf("wait table %s: %w", aws.ToString(table.TableName), err)
		}
		log.Printf("[migrate][dynamodb] created table=%s", aws.ToString(table.TableName))
	}
	return nil
}

func dynamoTableSpecs(t DynamoTables) []*dynamodb.CreateTableInput {
	hashKey := func(name string) []types.KeySchemaElement {
		return []types.KeySchemaElement{{AttributeName: aws.String(name), KeyType: types.KeyTypeHash}}
	}
	attr := func(name string, typ types.ScalarAttributeType) types.AttributeDefinition {
		return types.AttributeDefinition{AttributeName: aws.String(name), AttributeType: typ}
	}
	gsi := func(index, key string) types.GlobalSecondaryIndex {
		return types.GlobalSecondaryIndex{
			IndexName:  aws.String(index),
			KeySchema:  hashKey(key),
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		}
	}

	return []*dynamodb.CreateTableInput{
		{
			TableName:              aws.String(t.Drivers),
			BillingMode:            types.BillingModePayPerRequest,
			AttributeDefinitions:   []types.AttributeDefinition{attr("id", types.ScalarAttributeTypeN), attr("cpf", types.ScalarAttributeTypeS)},
			KeySchema:              hashKey("id"),
			GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{gsi(driversCPFIndex, "cpf")},
		},
		{
			TableName:            aws.String(t.Manifests),
			BillingMode:          types.BillingModePayPerRequest,
			AttributeDefinitions: []types.AttributeDefinition{attr("id", types.ScalarAttributeTypeN)},
			KeySchema:            hashKey("id"),
		},
		{
			TableName:              aws.String(t.Deliveries),
			BillingMode:            types.BillingModePayPerRequest,
			AttributeDefinitions:   []types.AttributeDefinition{attr("id", types.ScalarAttributeTypeN), attr("romaneio_id", types.ScalarAttributeTypeN)},
			KeySchema:              hashKey("id"),
			GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{gsi(deliveriesManifestIndex, "romaneio_id")},
		},
		{
			TableName:            aws.String(t.Counters),
			BillingMode:          types.BillingModePayPerRequest,
			AttributeDefinitions: []types.AttributeDefinition{attr("name", types.ScalarAttributeTypeS)},
			KeySchema:            hashKey("name"),
		},
	}
}
