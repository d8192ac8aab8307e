package repository

import (
	"fmt"
	"time"

	"romaneio_api/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

type driverItem struct {
	ID        int64    `dynamodbav:"id"`
	Name      string   `dynamodbav:"nome"`
	CPF       string   `dynamodbav:"cpf"`
	Phone     string   `dynamodbav:"telefone"`
	CreatedAt timeAttr `dynamodbav:"created_at"`
	UpdatedAt timeAttr `dynamodbav:"updated_at"`
}

type manifestItem struct {
	ID        int64    `dynamodbav:"id"`
	Number    string   `dynamodbav:"numero_romaneio"`
	IssueDate timeAttr `dynamodbav:"data_emissao"`
	DriverID  int64    `dynamodbav:"motorista_id"`
	Vehicle   string   `dynamodbav:"veiculo"`
	Status    string   `dynamodbav:"status"`
	CreatedAt timeAttr `dynamodbav:"created_at"`
	UpdatedAt timeAttr `dynamodbav:"updated_at"`
}

type deliveryItem struct {
	ID         int64       `dynamodbav:"id"`
	ManifestID int64       `dynamodbav:"romaneio_id"`
	Client     string      `dynamodbav:"cliente"`
	Address    string      `dynamodbav:"endereco"`
	Value      decimalAttr `dynamodbav:"valor"`
	Status     string      `dynamodbav:"status"`
	CreatedAt  timeAttr    `dynamodbav:"created_at"`
	UpdatedAt  timeAttr    `dynamodbav:"updated_at"`
}

// decimalAttr stores a decimal as a DynamoDB number without float rounding.
type decimalAttr decimal.Decimal

func (d decimalAttr) MarshalDynamoDBAttributeValue() (types.AttributeValue, error) {
	return &types.AttributeValueMemberN{Value: decimal.Decimal(d).String()}, nil
}

func (d *decimalAttr) UnmarshalDynamoDBAttributeValue(av types.AttributeValue) error {
	var raw string
	switch v := av.(type) {
	case *types.AttributeValueMemberN:
		raw = v.Value
	case *types.AttributeValueMemberS:
		raw = v.Value
	case *types.AttributeValueMemberNULL:
		*d = decimalAttr(decimal.Zero)
		return nil
	default:
		return fmt.Errorf("valor: unsupported attribute type %T", av)
	}
	parsed, err := decimal.NewFromString(raw)
	if err != nil {
		return fmt.Errorf("valor: %w", err)
	}
	*d = decimalAttr(parsed)
	return nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// timeAttr stores a timestamp as an RFC3339Nano string.
type timeAttr time.Time

func (t timeAttr) MarshalDynamoDBAttributeValue() (types.AttributeValue, error) {
	return &types.AttributeValueMemberS{Value: formatTime(time.Time(t))}, nil
}

func (t *timeAttr) UnmarshalDynamoDBAttributeValue(av types.AttributeValue) error {
	switch v := av.(type) {
	case *types.AttributeValueMemberS:
		parsed, err := time.Parse(time.RFC3339Nano, v.Value)
		if err != nil {
			return fmt.Errorf("timestamp: %w", err)
		}
		*t = timeAttr(parsed)
		return nil
	case *types.AttributeValueMemberNULL:
		*t = timeAttr(time.Time{})
		return nil
	default:
		return fmt.Errorf("timestamp: unsupported attribute type %T", av)
	}
}

func toDriverItem(d entities.Driver) driverItem {
	return driverItem{
		ID:        d.ID,
		Name:      d.Name,
		CPF:       d.CPF,
		Phone:     d.Phone,
		CreatedAt: timeAttr(d.CreatedAt),
		UpdatedAt: timeAttr(d.UpdatedAt),
	}
}

func fromDriverItem(it driverItem) entities.Driver {
	return entities.Driver{
		ID:        it.ID,
		Name:      it.Name,
		CPF:       it.CPF,
		Phone:     it.Phone,
		CreatedAt: time.Time(it.CreatedAt),
		UpdatedAt: time.Time(it.UpdatedAt),
	}
}

func toManifestItem(m entities.Manifest) manifestItem {
	return manifestItem{
		ID:        m.ID,
		Number:    m.Number,
		IssueDate: timeAttr(m.IssueDate),
		DriverID:  m.DriverID,
		Vehicle:   m.Vehicle,
		Status:    string(m.Status),
		CreatedAt: timeAttr(m.CreatedAt),
		UpdatedAt: timeAttr(m.UpdatedAt),
	}
}

func fromManifestItem(it manifestItem) entities.Manifest {
	return entities.Manifest{
		ID:        it.ID,
		Number:    it.Number,
		IssueDate: time.Time(it.IssueDate),
		DriverID:  it.DriverID,
		Vehicle:   it.Vehicle,
		Status:    entities.ManifestStatus(it.Status),
		CreatedAt: time.Time(it.CreatedAt),
		UpdatedAt: time.Time(it.UpdatedAt),
	}
}

func toDeliveryItem(d entities.Delivery) deliveryItem {
	return deliveryItem{
		ID:         d.ID,
		ManifestID: d.ManifestID,
		Client:     d.Client,
		Address:    d.Address,
		Value:      decimalAttr(d.Value),
		Status:     string(d.Status),
		CreatedAt:  timeAttr(d.CreatedAt),
		UpdatedAt:  timeAttr(d.UpdatedAt),
	}
}

func fromDeliveryItem(it deliveryItem) entities.Delivery {
	return entities.Delivery{
		ID:         it.ID,
		ManifestID: it.ManifestID,
		Client:     it.Client,
		Address:    it.Address,
		Value:      decimal.Decimal(it.Value),
		Status:     entities.DeliveryStatus(it.Status),
		CreatedAt:  time.Time(it.CreatedAt),
		UpdatedAt:  time.Time(it.UpdatedAt),
	}
}
