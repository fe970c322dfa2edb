package database

import (
	"testing"

	appconfig "nirman/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableDefinitions(t *testing.T) {
	defs := TableDefinitions(appconfig.DynamoDBConfig{
		ProposalsTable: "work_proposals",
		UsersTable:     "users",
		CountersTable:  "counters",
	})
	require.Len(t, defs, 3)

	names := []string{aws.ToString(defs[0].TableName), aws.ToString(defs[1].TableName), aws.ToString(defs[2].TableName)}
	assert.Equal(t, []string{"work_proposals", "users", "counters"}, names)

	for _, d := range defs {
		assert.Equal(t, types.BillingModePayPerRequest, d.BillingMode)
		assert.Equal(t, "id", aws.ToString(d.KeySchema[0].AttributeName))
	}

	users := defs[1]
	require.Len(t, users.GlobalSecondaryIndexes, 1)
	assert.Equal(t, UsernameIndex, aws.ToString(users.GlobalSecondaryIndexes[0].IndexName))
	assert.Len(t, users.AttributeDefinitions, 2)
	assert.Empty(t, defs[0].GlobalSecondaryIndexes)
}

func TestDefaultString(t *testing.T) {
	assert.Equal(t, "local", defaultString("", "local"))
	assert.Equal(t, "key", defaultString("key", "local"))
}
