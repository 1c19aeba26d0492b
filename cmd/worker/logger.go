package main

import (
	"fmt"

	"bookhub-backend/pkg/logger"
)

// asynqLogger routes asynq's internal logging through zerolog.
type asynqLogger struct{}

func (asynqLogger) Debug(args ...interface{}) { logger.Debug(fmt.Sprint(args...), nil) }
func (asynqLogger) Info(args ...interface{})  { logger.Info(fmt.Sprint(args...), nil) }
func (asynqLogger) Warn(args ...interface{})  { logger.Warn(fmt.Sprint(args...), nil) }
func (asynqLogger) Error(args ...interface{}) { logger.Error(fmt.Sprint(args...), nil) }
func (asynqLogger) Fatal(args ...interface{}) { logger.Error(fmt.Sprint(args...), nil) }
