package volstat

import (
	"fmt"
	"os"
	"sync"
	"time"
)

// LogFile, when set, receives a copy of every line written by LogWithDatetime.
var LogFile *os.File

var logMutex sync.Mutex

func LogWithDatetime(v ...interface{}) {
	message := fmt.Sprintln(append([]interface{}{time.Now().Format("2006-01-02 15:04:05")}, v...)...)
	logMutex.Lock()
	defer logMutex.Unlock()
	fmt.Print(message)
	if LogFile != nil {
		LogFile.WriteString(message)
	}
}
