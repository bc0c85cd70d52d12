package mock

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Action is a fallible operation whose outcome is scripted with On.
type Action struct {
	mock.Mock
}

func (m *Action) Do() error {
	return m.Called().Error(0)
}

func (m *Action) DoContext(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *Action) Open(name string) (string, error) {
	call := m.Called(name)
	return call.String(0), call.Error(1)
}
