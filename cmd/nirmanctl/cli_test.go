package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandTree(t *testing.T) {
	cmd, _, err := rootCmd.Find([]string{"tables", "create"})
	require.NoError(t, err)
	assert.Equal(t, "create", cmd.Name())

	cmd, _, err = rootCmd.Find([]string{"users", "add"})
	require.NoError(t, err)
	assert.Equal(t, "add", cmd.Name())
	for _, name := range []string{"username", "name", "role", "password", "email", "department"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag %s", name)
	}
}

func TestUsersAdd_RequiresFlags(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"users", "add", "--username", "asha"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
}
