// Package logger provides structured logging functionality for the client.
package logger
