package agro

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"agro-advisor/internal/models"
	"agro-advisor/internal/notify"
	"agro-advisor/internal/repositories"
	"agro-advisor/pkg/logger"
)

// AgroService runs the full pipeline: fetch observations, aggregate them
// into daily summaries, evaluate crop advisories, and render the report.
type AgroService struct {
	repo        repositories.ForecastRepository
	notifier    notify.Sender
	profiles    map[string]models.CropProfile
	defaultCrop string
	region      string
	loc         *time.Location
	l           *logger.Logger
}

// Report bundles everything a consumer needs: structured insights plus the
// rendered farmer message.
type Report struct {
	ID       string           `json:"report_id"`
	Crop     string           `json:"crop"`
	Region   string           `json:"region"`
	Insights []models.Insight `json:"insights"`
	Message  string           `json:"message"`
}

func NewAgroService(
	repo repositories.ForecastRepository,
	notifier notify.Sender,
	profiles []models.CropProfile,
	defaultCrop string,
	region string,
	loc *time.Location,
	l *logger.Logger,
) *AgroService {
	table := make(map[string]models.CropProfile, len(profiles))
	for _, p := range profiles {
		table[strings.ToLower(p.Name)] = p
	}

	return &AgroService{
		repo:        repo,
		notifier:    notifier,
		profiles:    table,
		defaultCrop: strings.ToLower(defaultCrop),
		region:      region,
		loc:         loc,
		l:           l,
	}
}

// ProfileFor resolves a crop name to its profile. Unknown names fall back to
// the default crop; that is documented behavior, not an error.
func (s *AgroService) ProfileFor(crop string) models.CropProfile {
	name := strings.ToLower(strings.TrimSpace(crop))
	if profile, ok := s.profiles[name]; ok {
		return profile
	}

	if name != "" {
		s.l.Warning("unknown crop, falling back to default profile", map[string]any{
			"crop":    crop,
			"default": s.defaultCrop,
		})
	}

	return s.profiles[s.defaultCrop]
}

// GenerateInsights runs fetch → aggregate → advise for the given crop and
// returns insights in chronological day order.
func (s *AgroService) GenerateInsights(ctx context.Context, crop string) ([]models.Insight, error) {
	return s.insightsFor(ctx, s.ProfileFor(crop))
}

func (s *AgroService) insightsFor(ctx context.Context, profile models.CropProfile) ([]models.Insight, error) {
	s.l.Info("starting insight generation", map[string]any{
		"crop":   profile.Name,
		"region": s.region,
		"repo":   s.repo.Name(),
	})

	observations, err := s.repo.FetchObservations(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "fetch forecast observations")
	}

	daily, err := Aggregate(observations, s.loc)
	if err != nil {
		return nil, errors.Wrap(err, "aggregate observations")
	}

	// Stable chronological ordering; date keys sort lexically.
	keys := make([]string, 0, len(daily))
	for k := range daily {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	insights := make([]models.Insight, 0, len(keys))
	for _, k := range keys {
		insights = append(insights, Advise(daily[k], profile))
	}

	s.l.Info("generated insights", map[string]any{
		"crop":         profile.Name,
		"days":         len(insights),
		"observations": len(observations),
	})

	return insights, nil
}

// GenerateReport produces insights plus the rendered message and hands the
// message to the notifier, when one is configured. A notifier failure is
// logged but does not fail the report.
func (s *AgroService) GenerateReport(ctx context.Context, crop string) (*Report, error) {
	profile := s.ProfileFor(crop)

	insights, err := s.insightsFor(ctx, profile)
	if err != nil {
		return nil, err
	}

	report := &Report{
		ID:       uuid.NewString(),
		Crop:     profile.Name,
		Region:   s.region,
		Insights: insights,
		Message:  RenderReport(insights, profile.Name, s.region),
	}

	if s.notifier != nil {
		if err := s.notifier.Send(report.ID, report.Message); err != nil {
			s.l.Warning("failed to dispatch report", map[string]any{
				"report_id": report.ID,
				"err":       err,
			})
		}
	}

	return report, nil
}
