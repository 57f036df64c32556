package inquiry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"github.com/cloudsitefy/inquiry-service/pkg/logging"
)

type dynamoAPI interface {
	PutItem(context.Context, *dynamodb.PutItemInput, ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(context.Context, *dynamodb.GetItemInput, ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Scan(context.Context, *dynamodb.ScanInput, ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	UpdateItem(context.Context, *dynamodb.UpdateItemInput, ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(context.Context, *dynamodb.DeleteItemInput, ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

// DynamoStore persists inquiries to a DynamoDB table keyed by id.
type DynamoStore struct {
	client    dynamoAPI
	tableName string
	logger    *logging.Logger
}

var _ Store = (*DynamoStore)(nil)

// NewDynamoStore builds a store backed by the provided DynamoDB client.
func NewDynamoStore(client dynamoAPI, tableName string, logger *logging.Logger) *DynamoStore {
	if client == nil {
		panic("inquiry: dynamodb client cannot be nil")
	}
	if tableName == "" {
		panic("inquiry: table name cannot be empty")
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &DynamoStore{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// Create inserts a new inquiry with server-assigned id, timestamps and
// workflow defaults.
func (s *DynamoStore) Create(ctx context.Context, sub Submission) (*Inquiry, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	inq := &Inquiry{
		ID:        uuid.NewString(),
		Name:      sub.Name,
		Email:     sub.Email,
		Phone:     sub.Phone,
		Company:   sub.Company,
		Service:   sub.Service,
		Message:   sub.Message,
		Timestamp: sub.Timestamp,
		UserAgent: sub.UserAgent,
		IP:        sub.IP,
		Status:    StatusNew,
		CreatedAt: now,
		UpdatedAt: now,
	}

	item, err := attributevalue.MarshalMap(inq)
	if err != nil {
		return nil, fmt.Errorf("inquiry: failed to marshal record: %w", err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.tableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	})
	if err != nil {
		s.logger.Error("inquiry create failed", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return inq, nil
}

// Get fetches an inquiry by id.
func (s *DynamoStore) Get(ctx context.Context, id string) (*Inquiry, error) {
	if id == "" {
		return nil, ErrNotFound
	}
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key:       idKey(id),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if out.Item == nil {
		return nil, ErrNotFound
	}

	var inq Inquiry
	if err := attributevalue.UnmarshalMap(out.Item, &inq); err != nil {
		return nil, fmt.Errorf("inquiry: failed to decode record: %w", err)
	}
	return &inq, nil
}

// List returns inquiries ordered by creation time descending. The collection
// stays small (one record per form submission), so a filtered scan with
// in-process ordering and pagination is sufficient.
func (s *DynamoStore) List(ctx context.Context, filter ListFilter) ([]*Inquiry, error) {
	filter = filter.Normalize()

	input := &dynamodb.ScanInput{TableName: aws.String(s.tableName)}
	if filter.Status != "" && filter.Status != "all" {
		input.FilterExpression = aws.String("#status = :status")
		input.ExpressionAttributeNames = map[string]string{"#status": "status"}
		input.ExpressionAttributeValues = map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: filter.Status},
		}
	}

	var items []map[string]types.AttributeValue
	for {
		out, err := s.client.Scan(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		items = append(items, out.Items...)
		if out.LastEvaluatedKey == nil {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}

	inquiries := make([]*Inquiry, 0, len(items))
	for _, item := range items {
		var inq Inquiry
		if err := attributevalue.UnmarshalMap(item, &inq); err != nil {
			return nil, fmt.Errorf("inquiry: failed to decode record: %w", err)
		}
		inquiries = append(inquiries, &inq)
	}

	sort.Slice(inquiries, func(i, j int) bool {
		return inquiries[i].CreatedAt > inquiries[j].CreatedAt
	})

	return paginate(inquiries, filter), nil
}

// Update merges the provided workflow fields and stamps updatedAt. Returns
// ErrNotFound when the id does not exist.
func (s *DynamoStore) Update(ctx context.Context, id string, req UpdateRequest) error {
	if id == "" {
		return ErrNotFound
	}

	expr := "SET #updated = :updated"
	names := map[string]string{"#updated": "updatedAt"}
	values := map[string]types.AttributeValue{
		":updated": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
	}

	if req.Status != nil {
		if !ValidStatus(*req.Status) {
			return fmt.Errorf("inquiry: invalid status %q", *req.Status)
		}
		expr += ", #status = :status"
		names["#status"] = "status"
		values[":status"] = &types.AttributeValueMemberS{Value: string(*req.Status)}
	}
	if req.Read != nil {
		expr += ", #read = :read"
		names["#read"] = "read"
		values[":read"] = &types.AttributeValueMemberBOOL{Value: *req.Read}
	}
	if req.Responded != nil {
		expr += ", responded = :responded"
		values[":responded"] = &types.AttributeValueMemberBOOL{Value: *req.Responded}
	}
	if req.Notes != nil {
		expr += ", notes = :notes"
		values[":notes"] = &types.AttributeValueMemberS{Value: *req.Notes}
	}

	_, err := s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(s.tableName),
		Key:                       idKey(id),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ConditionExpression:       aws.String("attribute_exists(id)"),
	})
	if err != nil {
		if isConditionalFailure(err) {
			return ErrNotFound
		}
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// Delete removes an inquiry. The second delete of the same id reports
// ErrNotFound.
func (s *DynamoStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrNotFound
	}
	_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(s.tableName),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(id)"),
	})
	if err != nil {
		if isConditionalFailure(err) {
			return ErrNotFound
		}
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

func idKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

func isConditionalFailure(err error) bool {
	var cce *types.ConditionalCheckFailedException
	return errors.As(err, &cce)
}

func paginate(inquiries []*Inquiry, filter ListFilter) []*Inquiry {
	if filter.Offset >= len(inquiries) {
		return []*Inquiry{}
	}
	end := filter.Offset + filter.Limit
	if end > len(inquiries) {
		end = len(inquiries)
	}
	return inquiries[filter.Offset:end]
}
