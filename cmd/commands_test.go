package cmd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/odpf/digits/cmd"
)

func TestNew(t *testing.T) {
	t.Run("houses every top level command", func(t *testing.T) {
		root := cmd.New()

		var names []string
		for _, c := range root.Commands() {
			names = append(names, c.Name())
		}
		assert.Subset(t, names, []string{"dataset", "version", "serve", "migration"})
	})
	t.Run("resolves dataset show", func(t *testing.T) {
		root := cmd.New()

		show, _, err := root.Find([]string{"dataset", "show"})
		assert.NoError(t, err)
		assert.Equal(t, "show", show.Name())
	})
}
