package multipart

import (
	"log"
)

type Logger interface {
	Printf(fmt string, v ...any)
}

// LogListener reports every part event to the loggers before passing it to the next
// listener. If no loggers are passed, log.Default() is used.
func LogListener(next Listener, loggers ...Logger) Listener {
	if len(loggers) == 0 {
		loggers = append(loggers, log.Default())
	}

	return logListener{next: next, loggers: loggers}
}

type logListener struct {
	next    Listener
	loggers []Logger
}

func (l logListener) OnHeaders(part Part) error {
	for _, logger := range l.loggers {
		logger.Printf("multipart: part #%d name=%q", part.Index, part.Name)

		for key, value := range part.Headers.Pairs() {
			logger.Printf("multipart: part #%d header %s: %s", part.Index, key, value)
		}
	}

	return l.next.OnHeaders(part)
}

func (l logListener) OnData(part Part, data []byte) error {
	for _, logger := range l.loggers {
		logger.Printf("multipart: part #%d name=%q data %d bytes", part.Index, part.Name, len(data))
	}

	return l.next.OnData(part, data)
}
