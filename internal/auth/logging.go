package auth

import "github.com/sirupsen/logrus"

// LogAuthAttempt records an authentication event.
// action: Issue|Logout|Guard
// status: Success|Fail
// identifier: email or other user claim (optional)
// message: additional info (optional)
func LogAuthAttempt(log logrus.FieldLogger, level logrus.Level, action string, status string, identifier string, message string) {
	if log == nil {
		return
	}
	entry := log.WithFields(logrus.Fields{
		"component": "auth",
		"action":    action,
		"status":    status,
	})
	if identifier != "" {
		entry = entry.WithField("identifier", identifier)
	}
	if message == "" {
		message = action + " " + status
	}

	switch level {
	case logrus.DebugLevel, logrus.TraceLevel:
		entry.Debug(message)
	case logrus.WarnLevel:
		entry.Warn(message)
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		entry.Error(message)
	default:
		entry.Info(message)
	}
}
