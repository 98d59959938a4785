package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"bidworks/internal/domain/entities"
	"bidworks/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultBidsTableName = "bids"

type bidItem struct {
	ContractNumber string `dynamodbav:"contract_number"`
	Status         string `dynamodbav:"status"`
	Snapshot       string `dynamodbav:"snapshot"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// BidDynamoRepository persists Bid snapshots in DynamoDB.
//
// Table requirements:
//   - PK: contract_number (string)
//
// The whole estimate travels as one JSON document. The reducer owns
// every intra-estimate consistency rule, so the store never needs to
// address phases or line items individually; saving is always a
// whole-snapshot replace.

type BidDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBidRepository = (*BidDynamoRepository)(nil)

func NewBidDynamoRepository(ddb *dynamodb.Client) *BidDynamoRepository {
	return &BidDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DYNAMODB_BIDS_TABLE", defaultBidsTableName),
	}
}

// NewBidDynamoRepositoryWithTable pins the table name explicitly; used
// when the caller already resolved configuration.
func NewBidDynamoRepositoryWithTable(ddb *dynamodb.Client, tableName string) *BidDynamoRepository {
	if tableName == "" {
		tableName = defaultBidsTableName
	}
	return &BidDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *BidDynamoRepository) Create(ctx context.Context, b entities.Bid) (entities.Bid, error) {
	it, err := toBidItem(b)
	if err != nil {
		return entities.Bid{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Bid{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#contract_number)"),
		ExpressionAttributeNames: map[string]string{
			"#contract_number": "contract_number",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			// Contract number is already taken; zero value signals the conflict.
			return entities.Bid{}, nil
		}
		return entities.Bid{}, err
	}
	return b, nil
}

func (r *BidDynamoRepository) GetByContractNumber(ctx context.Context, contractNumber string) (entities.Bid, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"contract_number": &types.AttributeValueMemberS{Value: contractNumber},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Bid{}, err
	}
	if len(out.Item) == 0 {
		return entities.Bid{}, nil
	}

	var it bidItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Bid{}, err
	}
	return fromBidItem(it)
}

func (r *BidDynamoRepository) UpdateSnapshot(ctx context.Context, contractNumber string, snapshot entities.Estimate) (entities.Bid, error) {
	doc, err := json.Marshal(snapshot)
	if err != nil {
		return entities.Bid{}, err
	}

	return r.update(ctx, contractNumber, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #snapshot = :snapshot, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":snapshot":   &types.AttributeValueMemberS{Value: string(doc)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#snapshot":   "snapshot",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *BidDynamoRepository) UpdateStatus(ctx context.Context, contractNumber string, status entities.BidStatus) (entities.Bid, error) {
	return r.update(ctx, contractNumber, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *BidDynamoRepository) update(
	ctx context.Context,
	contractNumber string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Bid, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"contract_number": &types.AttributeValueMemberS{Value: contractNumber},
		},
		ConditionExpression:       aws.String("attribute_exists(#contract_number)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#contract_number": "contract_number"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Bid{}, nil
		}
		return entities.Bid{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Bid{}, nil
	}
	var it bidItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Bid{}, err
	}
	return fromBidItem(it)
}

func toBidItem(b entities.Bid) (bidItem, error) {
	doc, err := json.Marshal(b.Estimate)
	if err != nil {
		return bidItem{}, err
	}
	return bidItem{
		ContractNumber: b.ContractNumber,
		Status:         string(b.Status),
		Snapshot:       string(doc),
		CreatedAt:      b.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      b.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromBidItem(it bidItem) (entities.Bid, error) {
	var snapshot entities.Estimate
	if it.Snapshot != "" {
		if err := json.Unmarshal([]byte(it.Snapshot), &snapshot); err != nil {
			return entities.Bid{}, err
		}
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Bid{
		ContractNumber: it.ContractNumber,
		Status:         entities.BidStatus(it.Status),
		Estimate:       snapshot,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}, nil
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
