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

// ManifestDynamoRepository persists manifests in DynamoDB and resolves their
// deliveries through the romaneio_id-index GSI.
type ManifestDynamoRepository struct {
	s *dynamoStore
}

var _ interfaces.IManifestRepository = (*ManifestDynamoRepository)(nil)

func (r *ManifestDynamoRepository) Create(ctx context.Context, m entities.Manifest) (entities.Manifest, error) {
	ok, err := r.s.exists(ctx, r.s.tables.Drivers, m.DriverID)
	if err != nil {
		return entities.Manifest{}, err
	}
	if !ok {
		return entities.Manifest{}, domainerr.NewNotFoundError("driver with id %d not found", m.DriverID)
	}

	id, err := r.s.nextID(ctx, r.s.tables.Manifests)
	if err != nil {
		return entities.Manifest{}, err
	}
	m.ID = id
	m.Deliveries = nil
	if err := r.s.put(ctx, r.s.tables.Manifests, toManifestItem(m)); err != nil {
		log.Printf("[manifest][dynamodb] put failed manifest_id=%d err=%v", id, err)
		return entities.Manifest{}, err
	}
	return m, nil
}

func (r *ManifestDynamoRepository) FindByID(ctx context.Context, id int64) (entities.Manifest, error) {
	var it manifestItem
	found, err := r.s.getItem(ctx, r.s.tables.Manifests, id, &it)
	if err != nil || !found {
		return entities.Manifest{}, err
	}

	items, err := r.s.deliveriesOf(ctx, id)
	if err != nil {
		return entities.Manifest{}, err
	}
	m := fromManifestItem(it)
	m.Deliveries = make([]entities.Delivery, 0, len(items))
	for _, d := range items {
		m.Deliveries = append(m.Deliveries, fromDeliveryItem(d))
	}
	return m, nil
}

func (r *ManifestDynamoRepository) ListAll(ctx context.Context) ([]entities.Manifest, error) {
	out := make([]entities.Manifest, 0)
	err := r.s.scanAll(ctx, r.s.tables.Manifests, func(items []map[string]types.AttributeValue) error {
		var batch []manifestItem
		if err := attributevalue.UnmarshalListOfMaps(items, &batch); err != nil {
			return err
		}
		for _, it := range batch {
			out = append(out, fromManifestItem(it))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *ManifestDynamoRepository) UpdateStatus(ctx context.Context, id int64, status entities.ManifestStatus) (entities.Manifest, error) {
	var it manifestItem
	found, err := r.s.update(ctx, r.s.tables.Manifests, id, statusUpdate(string(status)), &it)
	if err != nil {
		return entities.Manifest{}, err
	}
	if !found {
		return entities.Manifest{}, domainerr.NewNotFoundError("manifest with id %d not found", id)
	}
	return fromManifestItem(it), nil
}

// Delete removes the deliveries first so a failure never leaves orphans.
func (r *ManifestDynamoRepository) Delete(ctx context.Context, id int64) error {
	n, err := r.s.deleteDeliveriesOf(ctx, id)
	if err != nil {
		return err
	}
	if _, err := r.s.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.s.tables.Manifests),
		Key:       idKey(id),
	}); err != nil {
		return err
	}
	log.Printf("[manifest][dynamodb] deleted manifest_id=%d deliveries=%d", id, n)
	return nil
}

func statusUpdate(status string) func(now string) (string, map[string]types.AttributeValue, map[string]string) {
	return func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: status},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	}
}
