package logger

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestPlainFormatter(t *testing.T) {
	t.Run("prints only the message when entry has no fields", func(t *testing.T) {
		entry := &logrus.Entry{Message: "dataset found"}

		out, err := new(plainFormatter).Format(entry)
		assert.Nil(t, err)
		assert.Equal(t, "dataset found\n", string(out))
	})
	t.Run("prints fields sorted by key after the message", func(t *testing.T) {
		entry := &logrus.Entry{
			Message: "dataset found",
			Data:    logrus.Fields{"status": "Done", "id": "job1"},
		}

		out, err := new(plainFormatter).Format(entry)
		assert.Nil(t, err)
		assert.Equal(t, "dataset found id: job1 status: Done \n", string(out))
	})
}
