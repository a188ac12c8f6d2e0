package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"taxipark/pkg/logger"
	"taxipark/storage/mocks"
)

func init() {
	passwordCost = bcrypt.MinCost
}

type recordingNotifier struct {
	events []string
}

func (n *recordingNotifier) Notify(event string, subject fmt.Stringer) {
	n.events = append(n.events, event+": "+subject.String())
}

func newTestManager(t *testing.T) (IServiceManager, *mocks.Storage, *recordingNotifier) {
	t.Helper()
	stg := mocks.NewStorage(t)
	n := &recordingNotifier{}
	return New(stg, n, logger.NewNop(), 5), stg, n
}

var anyCtx = mock.Anything
