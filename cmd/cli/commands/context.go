package commands

import (
	"context"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/jakechorley/save-a-life/internal/config"
	"github.com/jakechorley/save-a-life/pkg/alert"
	"github.com/jakechorley/save-a-life/pkg/core/dashboard"
	"github.com/jakechorley/save-a-life/pkg/db"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Env              string
	Cfg              *config.Config
	Database         db.Database
	Alerter          alert.Alerter
	DashboardOptions dashboard.Options
	Logger           *zap.Logger
	Ctx              context.Context
	Out              io.Writer
	Now              func() time.Time
}

func (app *AppContext) now() time.Time {
	if app.Now == nil {
		return time.Now()
	}
	return app.Now()
}
