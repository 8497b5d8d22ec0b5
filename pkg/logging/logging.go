package logging

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"

	log "github.com/sirupsen/logrus"
)

// Setup configures the standard logger. format is either "text" or "json".
func Setup(debug bool, format string) error {

	log.StandardLogger().SetNoLock()
	if debug {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
	log.SetReportCaller(true)

	formatter, err := newFormatter(format)
	if err != nil {
		return err
	}
	log.SetFormatter(formatter)

	return nil
}

func newFormatter(format string) (log.Formatter, error) {
	switch format {
	case "", "text":
		return &log.TextFormatter{
			DisableLevelTruncation: true,
			FullTimestamp:          true,
			CallerPrettyfier:       textCaller,
		}, nil
	case "json":
		return &log.JSONFormatter{
			CallerPrettyfier: jsonCaller,
		}, nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}

func textCaller(frame *runtime.Frame) (function string, file string) {
	_, fileName := filepath.Split(frame.File)
	file = " " + fileName + ":" + strconv.Itoa(frame.Line) + " #"
	return
}

func jsonCaller(frame *runtime.Frame) (function string, file string) {
	_, fileName := filepath.Split(frame.File)
	file = fileName + ":" + strconv.Itoa(frame.Line)
	return
}
