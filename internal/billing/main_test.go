package billing_test

import (
	"testing"

	"github.com/aboldguess/Nichifier/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}
