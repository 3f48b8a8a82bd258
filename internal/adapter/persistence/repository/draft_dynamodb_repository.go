package repository

import (
	"context"
	"time"

	"pintura_xpto/internal/domain/entities"
	"pintura_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultDraftsTableName = "drafts"

type draftItem struct {
	Key       string `dynamodbav:"draft_key"`
	Kind      string `dynamodbav:"kind"`
	Payload   string `dynamodbav:"payload"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// DraftDynamoRepository persists job drafts in DynamoDB as a plain
// key-value table.
//
// Table requirements:
//   - PK: draft_key (string)
//
// Puts are unconditional: the latest save wins, which is exactly what a
// form auto-save wants.

type DraftDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDraftRepository = (*DraftDynamoRepository)(nil)

func NewDraftDynamoRepository(ddb *dynamodb.Client) *DraftDynamoRepository {
	return &DraftDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DRAFTS_TABLE", defaultDraftsTableName),
	}
}

func (r *DraftDynamoRepository) Put(ctx context.Context, d entities.Draft) (entities.Draft, error) {
	it := draftItem{
		Key:       d.Key,
		Kind:      string(d.Kind),
		Payload:   string(d.Payload),
		UpdatedAt: d.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Draft{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Draft{}, err
	}
	return d, nil
}

func (r *DraftDynamoRepository) Get(ctx context.Context, key string) (entities.Draft, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"draft_key": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Draft{}, err
	}
	if len(out.Item) == 0 {
		return entities.Draft{}, nil
	}

	var it draftItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Draft{}, err
	}

	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Draft{
		Key:       it.Key,
		Kind:      entities.JobKind(it.Kind),
		Payload:   []byte(it.Payload),
		UpdatedAt: updatedAt,
	}, nil
}

func (r *DraftDynamoRepository) Delete(ctx context.Context, key string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"draft_key": &types.AttributeValueMemberS{Value: key},
		},
	})
	return err
}
