package repository

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"time"

	"fieldtech/internal/domain/entities"
	"fieldtech/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const maxUpdateAttempts = 3

type productItem struct {
	ID           int64  `dynamodbav:"id_product"`
	Name         string `dynamodbav:"product_name"`
	Description  string `dynamodbav:"product_description,omitempty"`
	Model        string `dynamodbav:"model,omitempty"`
	Brand        string `dynamodbav:"manufacturer_brand,omitempty"`
	ImageURL     string `dynamodbav:"product_image,omitempty"`
	SalePrice    string `dynamodbav:"sale_price"`
	Quantity     int    `dynamodbav:"quantity"`
	QuantityUsed int    `dynamodbav:"quantity_used"`
}

type serviceOrderItem struct {
	ID                 int64         `dynamodbav:"id"`
	ClientID           int64         `dynamodbav:"client_id"`
	ClientName         string        `dynamodbav:"client_name"`
	ClientAddress      string        `dynamodbav:"client_address,omitempty"`
	ClientEmail        string        `dynamodbav:"client_email,omitempty"`
	ClientPhone        string        `dynamodbav:"client_phone,omitempty"`
	ServiceName        string        `dynamodbav:"service_name"`
	ServiceDescription string        `dynamodbav:"service_description,omitempty"`
	ScheduledDate      string        `dynamodbav:"scheduled_date"`
	StartTime          string        `dynamodbav:"start_time,omitempty"`
	EndTime            string        `dynamodbav:"end_time,omitempty"`
	State              string        `dynamodbav:"state_"`
	Activities         string        `dynamodbav:"activities,omitempty"`
	Products           []productItem `dynamodbav:"products"`
	Files              string        `dynamodbav:"files,omitempty"`
	CancelReason       string        `dynamodbav:"cancel_reason,omitempty"`
	Version            int64         `dynamodbav:"version"`
	UpdatedAt          string        `dynamodbav:"updated_at"`
}

// ServiceOrderDynamoRepository persists service orders in DynamoDB.
//
// Table requirements:
//   - PK: id (number)
//
// Every write bumps a version attribute; conditional updates compare it so a
// concurrent writer makes the slower one re-read.
type ServiceOrderDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IServiceOrderRepository = (*ServiceOrderDynamoRepository)(nil)

func NewServiceOrderDynamoRepository(ddb dynamoAPI, tableName string) *ServiceOrderDynamoRepository {
	if tableName == "" {
		tableName = DefaultTables().ServiceOrders
	}
	return &ServiceOrderDynamoRepository{ddb: ddb, tableName: tableName, now: time.Now}
}

func (r *ServiceOrderDynamoRepository) Put(ctx context.Context, o entities.ServiceOrder, clientID int64) error {
	it := toServiceOrderItem(o, clientID)
	it.Version = 1
	it.UpdatedAt = r.now().UTC().Format(time.RFC3339Nano)

	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *ServiceOrderDynamoRepository) GetByID(ctx context.Context, id int64) (entities.ServiceOrder, int64, error) {
	it, found, err := r.get(ctx, id)
	if err != nil || !found {
		return entities.ServiceOrder{}, 0, err
	}
	return fromServiceOrderItem(it), it.ClientID, nil
}

func (r *ServiceOrderDynamoRepository) List(ctx context.Context) ([]interfaces.StoredServiceOrder, error) {
	var out []interfaces.StoredServiceOrder
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []serviceOrderItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, interfaces.StoredServiceOrder{Order: fromServiceOrderItem(it), ClientID: it.ClientID})
		}
	}
	return out, nil
}

// UpdateIfStatus reads the order, applies mutate when its state is one of
// from, and writes it back only if nobody wrote in between. It returns the
// zero order when the order is missing or not in an allowed state.
func (r *ServiceOrderDynamoRepository) UpdateIfStatus(ctx context.Context, id int64, from []entities.OrderStatus, mutate func(*entities.ServiceOrder)) (entities.ServiceOrder, error) {
	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		it, found, err := r.get(ctx, id)
		if err != nil {
			return entities.ServiceOrder{}, err
		}
		if !found || !slices.Contains(from, entities.OrderStatus(it.State)) {
			return entities.ServiceOrder{}, nil
		}

		o := fromServiceOrderItem(it)
		mutate(&o)
		next := toServiceOrderItem(o, it.ClientID)
		next.Version = it.Version + 1
		next.UpdatedAt = r.now().UTC().Format(time.RFC3339Nano)

		av, err := attributevalue.MarshalMap(next)
		if err != nil {
			return entities.ServiceOrder{}, err
		}
		_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName:           aws.String(r.tableName),
			Item:                av,
			ConditionExpression: aws.String("#version = :version AND #state = :state"),
			ExpressionAttributeNames: map[string]string{
				"#version": "version",
				"#state":   "state_",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":version": &types.AttributeValueMemberN{Value: strconv.FormatInt(it.Version, 10)},
				":state":   &types.AttributeValueMemberS{Value: it.State},
			},
		})
		if err == nil {
			return o, nil
		}
		if !isConditionFailed(err) {
			return entities.ServiceOrder{}, err
		}
	}
	return entities.ServiceOrder{}, fmt.Errorf("%w: service order %d", ErrWriteConflict, id)
}

func (r *ServiceOrderDynamoRepository) get(ctx context.Context, id int64) (serviceOrderItem, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            numberKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return serviceOrderItem{}, false, err
	}
	if len(out.Item) == 0 {
		return serviceOrderItem{}, false, nil
	}
	var it serviceOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return serviceOrderItem{}, false, err
	}
	return it, true, nil
}

func toServiceOrderItem(o entities.ServiceOrder, clientID int64) serviceOrderItem {
	products := make([]productItem, 0, len(o.Products))
	for _, p := range o.Products {
		products = append(products, productItem{
			ID:           p.ID,
			Name:         p.Name,
			Description:  p.Description,
			Model:        p.Model,
			Brand:        p.Brand,
			ImageURL:     p.ImageURL,
			SalePrice:    p.UnitPrice.String(),
			Quantity:     p.Quantity,
			QuantityUsed: p.QuantityUsed,
		})
	}
	return serviceOrderItem{
		ID:                 o.ID,
		ClientID:           clientID,
		ClientName:         o.Client.Name,
		ClientAddress:      o.Client.Address,
		ClientEmail:        o.Client.Email,
		ClientPhone:        o.Client.Phone,
		ServiceName:        o.ServiceName,
		ServiceDescription: o.ServiceDescription,
		ScheduledDate:      o.ScheduledDate,
		StartTime:          o.StartTime,
		EndTime:            o.EndTime,
		State:              string(o.Status),
		Activities:         o.Activities,
		Products:           products,
		Files:              o.Signature,
		CancelReason:       o.CancelReason,
	}
}

func fromServiceOrderItem(it serviceOrderItem) entities.ServiceOrder {
	status, err := entities.ParseOrderStatus(it.State)
	if err != nil {
		status = entities.StatusPending
	}
	var products []entities.Product
	for _, p := range it.Products {
		price, _ := decimal.NewFromString(p.SalePrice)
		products = append(products, entities.Product{
			ID:           p.ID,
			Name:         p.Name,
			Description:  p.Description,
			Model:        p.Model,
			Brand:        p.Brand,
			ImageURL:     p.ImageURL,
			UnitPrice:    price,
			Quantity:     p.Quantity,
			QuantityUsed: p.QuantityUsed,
		})
	}
	return entities.ServiceOrder{
		ID: it.ID,
		Client: entities.ClientInfo{
			Name:    it.ClientName,
			Address: it.ClientAddress,
			Email:   it.ClientEmail,
			Phone:   it.ClientPhone,
		},
		ServiceName:        it.ServiceName,
		ServiceDescription: it.ServiceDescription,
		ScheduledDate:      it.ScheduledDate,
		StartTime:          it.StartTime,
		EndTime:            it.EndTime,
		Status:             status,
		Activities:         it.Activities,
		Products:           products,
		Signature:          it.Files,
		CancelReason:       it.CancelReason,
	}
}
