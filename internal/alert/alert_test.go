package alert

import (
	"context"
	"testing"

	"github.com/Shuang777/lending-club/pkg/config"
	"github.com/Shuang777/lending-club/pkg/logger"
	mockLogger "github.com/Shuang777/lending-club/pkg/logger/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestMailer_Send_NoRecipients(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	log := mockLogger.NewMockInterface(ctrl)
	log.EXPECT().
		WarnContext(ctx, "Alert raised with no recipients configured", logger.Field{
			Key:   "subject",
			Value: "test alert",
		})

	mailer := NewMailer(config.AlertConfig{}, log)

	assert.NoError(t, mailer.Send(ctx, "test alert", "body"))
}
