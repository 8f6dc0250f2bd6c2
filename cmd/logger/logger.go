package logger

import (
	"fmt"
	"sort"

	"github.com/odpf/salt/log"
	"github.com/sirupsen/logrus"

	"github.com/odpf/digits/config"
)

type plainFormatter int

func (*plainFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	if len(entry.Data) == 0 {
		return []byte(entry.Message + "\n"), nil
	}

	keys := make([]string, 0, len(entry.Data))
	for key := range entry.Data {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var data string
	for _, key := range keys {
		data += fmt.Sprintf("%s: %v ", key, entry.Data[key])
	}
	return []byte(fmt.Sprintf("%s %s\n", entry.Message, data)), nil
}

// NewDefaultLogger initializes plain logger
func NewDefaultLogger() log.Logger {
	return log.NewLogrus(
		log.LogrusWithLevel(config.LogLevelInfo.String()),
		log.LogrusWithFormatter(new(plainFormatter)),
	)
}
