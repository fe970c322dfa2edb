package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"nirman/internal/domain/entities"
	"nirman/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// WorkProposalDynamoRepository persists WorkProposal entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Writes after creation are full-item puts guarded by the stored version.
type WorkProposalDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWorkProposalRepository = (*WorkProposalDynamoRepository)(nil)

func NewWorkProposalDynamoRepository(ddb *dynamodb.Client, tableName string) *WorkProposalDynamoRepository {
	return &WorkProposalDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *WorkProposalDynamoRepository) Create(ctx context.Context, p entities.WorkProposal) (entities.WorkProposal, error) {
	if p.Version == 0 {
		p.Version = 1
	}
	av, err := attributevalue.MarshalMap(toProposalItem(p))
	if err != nil {
		return entities.WorkProposal{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.WorkProposal{}, err
	}
	return p, nil
}

func (r *WorkProposalDynamoRepository) GetByID(ctx context.Context, id string) (entities.WorkProposal, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.WorkProposal{}, err
	}
	if len(out.Item) == 0 {
		return entities.WorkProposal{}, nil
	}

	var it proposalItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.WorkProposal{}, err
	}
	return fromProposalItem(it), nil
}

// Update writes p only if the stored version still equals expectedVersion.
// The returned proposal carries the bumped version.
func (r *WorkProposalDynamoRepository) Update(ctx context.Context, p entities.WorkProposal, expectedVersion int64) (entities.WorkProposal, error) {
	p.Version = expectedVersion + 1
	av, err := attributevalue.MarshalMap(toProposalItem(p))
	if err != nil {
		return entities.WorkProposal{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.WorkProposal{}, interfaces.ErrVersionConflict
		}
		return entities.WorkProposal{}, err
	}
	return p, nil
}

// List scans the table with the filter pushed down to DynamoDB. Ordering and
// pagination are left to the caller.
func (r *WorkProposalDynamoRepository) List(ctx context.Context, filter interfaces.WorkProposalFilter) ([]entities.WorkProposal, error) {
	in := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}
	if expr, names, values := buildListFilter(filter); expr != "" {
		in.FilterExpression = aws.String(expr)
		in.ExpressionAttributeNames = names
		in.ExpressionAttributeValues = values
	}

	var out []entities.WorkProposal
	pager := dynamodb.NewScanPaginator(r.ddb, in)
	for pager.HasMorePages() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []proposalItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromProposalItem(it))
		}
	}
	return out, nil
}

func buildListFilter(f interfaces.WorkProposalFilter) (string, map[string]string, map[string]types.AttributeValue) {
	var clauses []string
	names := map[string]string{}
	values := map[string]types.AttributeValue{}

	if len(f.Statuses) > 0 {
		placeholders := make([]string, 0, len(f.Statuses))
		for i, s := range f.Statuses {
			key := fmt.Sprintf(":s%d", i)
			placeholders = append(placeholders, key)
			values[key] = &types.AttributeValueMemberS{Value: string(s)}
		}
		names["#status"] = "status"
		clauses = append(clauses, "#status IN ("+strings.Join(placeholders, ", ")+")")
	}

	if dept := strings.ToLower(strings.TrimSpace(f.Department)); dept != "" {
		names["#department_lc"] = "department_lc"
		values[":dept"] = &types.AttributeValueMemberS{Value: dept}
		clauses = append(clauses, "contains(#department_lc, :dept)")
	}

	if f.MinProgress != nil && f.MaxProgress != nil {
		names["#wp"] = "work_progress"
		names["#pct"] = "progress_percentage"
		values[":min_pct"] = &types.AttributeValueMemberN{Value: strconv.Itoa(*f.MinProgress)}
		values[":max_pct"] = &types.AttributeValueMemberN{Value: strconv.Itoa(*f.MaxProgress)}
		clauses = append(clauses, "#wp.#pct BETWEEN :min_pct AND :max_pct")
	}

	if len(clauses) == 0 {
		return "", nil, nil
	}
	return strings.Join(clauses, " AND "), names, values
}
