package repository

import (
	"context"
	"log"
	"sort"

	"romaneio_api/internal/domain/domainerr"
	"romaneio_api/internal/domain/entities"
	"romaneio_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DriverDynamoRepository persists drivers in DynamoDB. CPF uniqueness is
// checked through the cpf-index GSI before writing.
type DriverDynamoRepository struct {
	s *dynamoStore
}

var _ interfaces.IDriverRepository = (*DriverDynamoRepository)(nil)

func (r *DriverDynamoRepository) Create(ctx context.Context, d entities.Driver) (entities.Driver, error) {
	existing, err := r.FindByCPF(ctx, d.CPF)
	if err != nil {
		return entities.Driver{}, err
	}
	if existing.ID != 0 {
		return entities.Driver{}, domainerr.NewConflictError("tax id already registered")
	}

	id, err := r.s.nextID(ctx, r.s.tables.Drivers)
	if err != nil {
		return entities.Driver{}, err
	}
	d.ID = id
	if err := r.s.put(ctx, r.s.tables.Drivers, toDriverItem(d)); err != nil {
		log.Printf("[driver][dynamodb] put failed driver_id=%d err=%v", id, err)
		return entities.Driver{}, err
	}
	return d, nil
}

func (r *DriverDynamoRepository) FindByID(ctx context.Context, id int64) (entities.Driver, error) {
	var it driverItem
	found, err := r.s.getItem(ctx, r.s.tables.Drivers, id, &it)
	if err != nil || !found {
		return entities.Driver{}, err
	}
	return fromDriverItem(it), nil
}

func (r *DriverDynamoRepository) FindByCPF(ctx context.Context, cpf string) (entities.Driver, error) {
	out, err := r.s.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:                aws.String(r.s.tables.Drivers),
		IndexName:                aws.String(driversCPFIndex),
		KeyConditionExpression:   aws.String("#cpf = :cpf"),
		ExpressionAttributeNames: map[string]string{"#cpf": "cpf"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cpf": &types.AttributeValueMemberS{Value: cpf},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Driver{}, err
	}
	if len(out.Items) == 0 {
		return entities.Driver{}, nil
	}
	var it driverItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Driver{}, err
	}
	return fromDriverItem(it), nil
}

func (r *DriverDynamoRepository) ListAll(ctx context.Context) ([]entities.Driver, error) {
	out := make([]entities.Driver, 0)
	err := r.s.scanAll(ctx, r.s.tables.Drivers, func(items []map[string]types.AttributeValue) error {
		var batch []driverItem
		if err := attributevalue.UnmarshalListOfMaps(items, &batch); err != nil {
			return err
		}
		for _, it := range batch {
			out = append(out, fromDriverItem(it))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *DriverDynamoRepository) Update(ctx context.Context, id int64, u entities.DriverUpdate) (entities.Driver, error) {
	var it driverItem
	found, err := r.s.update(ctx, r.s.tables.Drivers, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{"#updated_at": "updated_at"}
		if u.Name != nil {
			expr += ", #nome = :nome"
			vals[":nome"] = &types.AttributeValueMemberS{Value: *u.Name}
			names["#nome"] = "nome"
		}
		if u.Phone != nil {
			expr += ", #telefone = :telefone"
			vals[":telefone"] = &types.AttributeValueMemberS{Value: *u.Phone}
			names["#telefone"] = "telefone"
		}
		return expr, vals, names
	}, &it)
	if err != nil {
		return entities.Driver{}, err
	}
	if !found {
		return entities.Driver{}, domainerr.NewNotFoundError("driver not found")
	}
	return fromDriverItem(it), nil
}
