package database

import (
	"context"
	"errors"
	"time"

	appconfig "nirman/internal/config"
	"nirman/pkg/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// UsernameIndex is the GSI on the users table keyed by username.
const UsernameIndex = "username-index"

const tableWaitTimeout = 2 * time.Minute

// TableDefinitions returns the CreateTable inputs for every table the
// service uses. All tables are on-demand.
func TableDefinitions(cfg appconfig.DynamoDBConfig) []*dynamodb.CreateTableInput {
	return []*dynamodb.CreateTableInput{
		hashKeyTable(cfg.ProposalsTable),
		usersTable(cfg.UsersTable),
		hashKeyTable(cfg.CountersTable),
	}
}

func hashKeyTable(name string) *dynamodb.CreateTableInput {
	return &dynamodb.CreateTableInput{
		TableName:   aws.String(name),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
		},
	}
}

func usersTable(name string) *dynamodb.CreateTableInput {
	in := hashKeyTable(name)
	in.AttributeDefinitions = append(in.AttributeDefinitions, types.AttributeDefinition{
		AttributeName: aws.String("username"), AttributeType: types.ScalarAttributeTypeS,
	})
	in.GlobalSecondaryIndexes = []types.GlobalSecondaryIndex{
		{
			IndexName: aws.String(UsernameIndex),
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String("username"), KeyType: types.KeyTypeHash},
			},
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		},
	}
	return in
}

// EnsureTables creates any missing table and waits until it is active.
// It returns the names of the tables it created.
func EnsureTables(ctx context.Context, ddb *dynamodb.Client, cfg appconfig.DynamoDBConfig) ([]string, error) {
	var created []string
	for _, def := range TableDefinitions(cfg) {
		name := aws.ToString(def.TableName)

		_, err := ddb.CreateTable(ctx, def)
		if err != nil {
			var inUse *types.ResourceInUseException
			if errors.As(err, &inUse) {
				logger.Info(ctx, "[database] table already exists", zap.String("table", name))
				continue
			}
			return created, err
		}

		waiter := dynamodb.NewTableExistsWaiter(ddb)
		if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(name)}, tableWaitTimeout); err != nil {
			return created, err
		}
		logger.Info(ctx, "[database] table created", zap.String("table", name))
		created = append(created, name)
	}
	return created, nil
}
