package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/gymbro/internal/client/models"
)

// Dashboard is the joined result of the progress and streak requests. Each
// half carries its own error.
type Dashboard struct {
	Progress    *models.Progress
	ProgressErr error

	Streaks    *models.Streaks
	StreaksErr error
}

// Complete reports whether both halves loaded.
func (d Dashboard) Complete() bool {
	return d.ProgressErr == nil && d.StreaksErr == nil
}

// DashboardService loads the home screen data.
type DashboardService interface {
	Load(ctx context.Context) Dashboard
}

type dashboardService struct {
	client Client
}

func NewDashboardService(client Client) DashboardService {
	return &dashboardService{client: client}
}

// Load issues both requests concurrently and waits for both.
func (s *dashboardService) Load(ctx context.Context) Dashboard {

	var (
		d  Dashboard
		wg sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		p, err := s.client.Progress(ctx)
		if err != nil {
			d.ProgressErr = fmt.Errorf("load progress: %w", err)
			return
		}
		d.Progress = p
	}()
	go func() {
		defer wg.Done()
		st, err := s.client.Streaks(ctx)
		if err != nil {
			d.StreaksErr = fmt.Errorf("load streaks: %w", err)
			return
		}
		d.Streaks = st
	}()
	wg.Wait()

	return d
}
