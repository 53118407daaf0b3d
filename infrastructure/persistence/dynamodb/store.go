package dynamodb

import (
	"context"
	"errors"
	"fmt"

	"goaltracker-backend/infrastructure/persistence/abstractions"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// Store implements abstractions.ItemStore against a DynamoDB table.
// It holds no client-side cache; every call round-trips to the table.
type Store struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewStore creates a new DynamoDB-backed item store
func NewStore(client *dynamodb.Client, tableName string, logger *zap.Logger) *Store {
	return &Store{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// GetItem performs a consistent point lookup at the composite key.
func (s *Store) GetItem(ctx context.Context, partitionKey, sortKey string) (abstractions.Item, error) {
	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			abstractions.AttrPartitionKey: &types.AttributeValueMemberS{Value: partitionKey},
			abstractions.AttrSortKey:      &types.AttributeValueMemberS{Value: sortKey},
		},
		ConsistentRead: aws.Bool(true),
	}

	result, err := s.client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get item at %s/%s: %w", partitionKey, sortKey, err)
	}

	if len(result.Item) == 0 {
		return nil, abstractions.ErrItemNotFound
	}

	var item abstractions.Item
	if err := attributevalue.UnmarshalMap(result.Item, &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item at %s/%s: %w", partitionKey, sortKey, err)
	}

	return item, nil
}

// PutItemIfAbsent writes the item with a condition that no record exists at
// its composite key. A ConditionalCheckFailedException surfaces as
// ErrItemAlreadyExists; anything else is a transient storage fault.
func (s *Store) PutItemIfAbsent(ctx context.Context, item abstractions.Item) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("failed to marshal item: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(PK) AND attribute_not_exists(SK)"),
	}

	if _, err := s.client.PutItem(ctx, input); err != nil {
		var conditionalCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionalCheckFailed) {
			s.logger.Debug("conditional write rejected",
				zap.String("PK", item[abstractions.AttrPartitionKey]),
				zap.String("SK", item[abstractions.AttrSortKey]),
			)
			return abstractions.ErrItemAlreadyExists
		}
		return fmt.Errorf("failed to put item: %w", err)
	}

	return nil
}

// QueryIndex runs an equality query against a global secondary index.
// Index reads are eventually consistent, so callers must treat the result
// as a best-effort view.
func (s *Store) QueryIndex(ctx context.Context, indexName, attribute, value, sortKey string) ([]abstractions.Item, error) {
	keyCond := expression.Key(attribute).Equal(expression.Value(value)).
		And(expression.Key(abstractions.AttrSortKey).Equal(expression.Value(sortKey)))

	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build query expression: %w", err)
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(s.tableName),
		IndexName:                 aws.String(indexName),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}

	result, err := s.client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query index %s: %w", indexName, err)
	}

	items := make([]abstractions.Item, 0, len(result.Items))
	for _, raw := range result.Items {
		var item abstractions.Item
		if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
			return nil, fmt.Errorf("failed to unmarshal queried item: %w", err)
		}
		items = append(items, item)
	}

	return items, nil
}
