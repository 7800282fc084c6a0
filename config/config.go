package config

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strings"
	"sync"

	"github.com/curtisnewbie/chrono/util/errs"
	"github.com/curtisnewbie/chrono/util/utillog"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

const (
	PROP_TIMEZONE   = "chrono.timezone"
	PROP_PATTERN    = "chrono.pattern"
	PROP_DATE_STYLE = "chrono.date-style"
	PROP_TIME_STYLE = "chrono.time-style"
	PROP_LOCALE     = "chrono.locale"
	PROP_LOG_LEVEL  = "chrono.log-level"

	PROP_LOG_FILE             = "chrono.log-file"
	PROP_LOG_FILE_MAX_SIZE    = "chrono.log-file-max-size"
	PROP_LOG_FILE_MAX_AGE     = "chrono.log-file-max-age"
	PROP_LOG_FILE_MAX_BACKUPS = "chrono.log-file-max-backups"
)

var (
	// regex for arg expansion
	resolveArgRegexp = regexp.MustCompile(`\${[a-zA-Z0-9\\-\\_\.]+}`)

	// viper instance owned by chrono, the host app's global viper is left alone
	vp = newViper()

	// mutex for viper
	viperRWMutex sync.RWMutex

	// rolling log file opened by ConfigureLogging
	logFile   io.Closer
	logFileMu sync.Mutex
)

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	v.SetDefault(PROP_TIMEZONE, "Local")
	v.SetDefault(PROP_PATTERN, "")
	v.SetDefault(PROP_DATE_STYLE, "full")
	v.SetDefault(PROP_TIME_STYLE, "full")
	v.SetDefault(PROP_LOCALE, "en-US")
	v.SetDefault(PROP_LOG_LEVEL, "info")
	v.SetDefault(PROP_LOG_FILE, "")
	v.SetDefault(PROP_LOG_FILE_MAX_SIZE, 50)
	v.SetDefault(PROP_LOG_FILE_MAX_AGE, 7)
	v.SetDefault(PROP_LOG_FILE_MAX_BACKUPS, 10)
	return v
}

// Set value for the prop
func SetProp(prop string, val any) {
	doWithViperWriteLock(func() { vp.Set(prop, val) })
}

// Get prop as int
func GetPropInt(prop string) int {
	return cast.ToInt(doWithViperReadLock(func() any { return vp.Get(prop) }))
}

/*
Get prop as string

If the value is an argument that can be expanded, the actual value will be resolved if possible.

e.g, for "timezone" : "${TZ}".

This func will attempt to resolve the actual value for '${TZ}'.
*/
func GetPropStr(prop string) string {
	return ResolveArg(cast.ToString(doWithViperReadLock(func() any { return vp.Get(prop) })))
}

/*
Load config from yaml file

Repetitively calling this method overides previously loaded config.

Missing file is not an error, the defaults and environment variables still apply.
*/
func LoadConfigFromFile(configFile string) error {
	if configFile == "" {
		return nil
	}

	f, err := os.Open(configFile)
	if err != nil {
		if os.IsNotExist(err) {
			utillog.DebugLog("Unable to find config file: '%s'", configFile)
			return nil
		}
		return errs.WrapErr(err)
	}
	defer f.Close()

	err = doWithViperWriteLock2(func() error {
		vp.SetConfigType("yml")
		return vp.ReadConfig(bufio.NewReader(f))
	})
	if err != nil {
		utillog.ErrorLog("Failed to load config file: '%s', %v", configFile, err)
		return errs.ErrIllegalArgument.Wrapf(err, "config file: %v", configFile)
	}

	if err := ConfigureLogging(); err != nil {
		utillog.ErrorLog("Failed to configure logging, %v", err)
	}
	utillog.DebugLog("Loaded config file: '%v'", configFile)
	return nil
}

// Apply the log level and the rolling log file props to the logger backing utillog.
func ConfigureLogging() error {
	if err := utillog.SetLevel(GetPropStr(PROP_LOG_LEVEL)); err != nil {
		return errs.ErrIllegalArgument.Wrapf(err, "%v: '%v'", PROP_LOG_LEVEL, GetPropStr(PROP_LOG_LEVEL))
	}

	f := GetPropStr(PROP_LOG_FILE)
	if f == "" {
		return nil
	}

	logFileMu.Lock()
	defer logFileMu.Unlock()
	if logFile != nil {
		logFile.Close()
	}
	logFile = utillog.SetLogFile(utillog.RollingLogFileParam{
		Filename:   f,
		MaxSize:    GetPropInt(PROP_LOG_FILE_MAX_SIZE),
		MaxAge:     GetPropInt(PROP_LOG_FILE_MAX_AGE),
		MaxBackups: GetPropInt(PROP_LOG_FILE_MAX_BACKUPS),
	})
	utillog.InfoLog("Logging to rolling file '%v'", f)
	return nil
}

// Overwrite props with cli arguments in 'KEY=VALUE' syntax, e.g., 'chrono.timezone=Asia/Tokyo'.
//
// Only keys prefixed with 'chrono.' are applied. The remaining args are returned.
func ApplyArgs(args []string) []string {
	remaining := make([]string, 0, len(args))
	props := make([]string, 0, len(args))
	for _, s := range args {
		if k, _, ok := cutArg(s); ok && strings.HasPrefix(k, "chrono.") {
			props = append(props, s)
		} else {
			remaining = append(remaining, s)
		}
	}
	for k, v := range ArgKeyVal(props) {
		SetProp(k, v)
	}
	return remaining
}

/*
Parse CLI args to key-value map, args without '=' are skipped
*/
func ArgKeyVal(args []string) map[string]string {
	m := map[string]string{}
	for _, s := range args {
		if k, v, ok := cutArg(s); ok {
			m[k] = v
		}
	}
	return m
}

func cutArg(s string) (string, string, bool) {
	k, v, ok := strings.Cut(s, "=")
	if !ok {
		return "", "", false
	}
	return strings.TrimSpace(k), strings.TrimSpace(v), true
}

// Resolve argument, e.g., for arg like '${someArg}', it will in fact look for 'someArg' in os.Env
func ResolveArg(arg string) string {
	return resolveArgRegexp.ReplaceAllStringFunc(arg, func(s string) string {
		r := []rune(s)
		key := string(r[2 : len(r)-1])
		val := os.Getenv(key)

		if val == "" {
			val = cast.ToString(doWithViperReadLock(func() any { return vp.Get(key) }))
		}

		if val == "" {
			val = s
		}
		return val
	})
}

// Reset all props to defaults, mainly for tests.
func Reset() {
	doWithViperWriteLock(func() { vp = newViper() })
}

// call with viper lock
func doWithViperWriteLock(f func()) {
	viperRWMutex.Lock()
	defer viperRWMutex.Unlock()
	f()
}

// call with viper lock
func doWithViperWriteLock2(f func() error) error {
	viperRWMutex.Lock()
	defer viperRWMutex.Unlock()
	return f()
}

// call and return with viper lock
func doWithViperReadLock[T any](f func() T) T {
	viperRWMutex.RLock()
	defer viperRWMutex.RUnlock()
	return f()
}
