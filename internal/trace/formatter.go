package trace

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Formatter renders entries as a timestamp line followed by a level symbol,
// the message and the entry fields in key order.
type Formatter struct {
	// DisableTimestamp omits the timestamp line.
	DisableTimestamp bool
}

// Format renders a single log entry.
func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	var level string
	switch entry.Level {
	case logrus.TraceLevel, logrus.DebugLevel:
		level = "🔎"
	case logrus.InfoLevel:
		level = "ℹ️"
	case logrus.WarnLevel:
		level = "⚠️"
	case logrus.ErrorLevel:
		level = "❌"
	case logrus.FatalLevel:
		level = "💥"
	case logrus.PanicLevel:
		level = "😨"
	default:
		level = "❓"
	}

	message := entry.Message
	for _, emoji := range []string{"📤", "📥", "✅", "🔑"} {
		if strings.HasPrefix(message, emoji+" ") {
			level = emoji
			message = message[len(emoji)+1:]
			break
		}
	}

	buf := bytes.NewBuffer(nil)
	if !f.DisableTimestamp {
		fmt.Fprintf(buf, "[%s]\n", entry.Time.UTC().Format(time.RFC3339Nano))
	}
	fmt.Fprintf(buf, "%s %s", level, message)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(buf, " %s=%v", k, entry.Data[k])
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
