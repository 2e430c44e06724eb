// Package issues maps stored server issue records to the issues consumed by the analyzer.
package issues

import (
	"time"

	"go.trai.ch/lintsync/internal/core/domain"
)

// ToDomainIssue binds a server record to a local file path.
// The text range is only set when the primary location carries one.
func ToDomainIssue(rec *domain.ServerIssue, localPath string) *domain.Issue {
	issue := &domain.Issue{
		Key:           rec.Key,
		RuleKey:       rec.RuleRepository + domain.RuleKeySeparator + rec.RuleKey,
		Severity:      rec.Severity,
		Type:          rec.Type,
		AssigneeLogin: rec.AssigneeLogin,
		LineHash:      rec.LineHash,
		Message:       rec.PrimaryLocation.Message,
		FilePath:      localPath,
		CreationDate:  time.UnixMilli(rec.CreationDate),
		Resolution:    rec.Resolution,
		TextRange:     copyRange(rec.PrimaryLocation.TextRange),
	}

	if len(rec.Flows) > 0 {
		issue.Flows = make([]domain.Flow, len(rec.Flows))
		for i, f := range rec.Flows {
			issue.Flows[i] = copyFlow(f)
		}
	}

	return issue
}

// ToDomainIssues maps every record of one file.
func ToDomainIssues(recs []*domain.ServerIssue, localPath string) []*domain.Issue {
	out := make([]*domain.Issue, 0, len(recs))
	for _, rec := range recs {
		out = append(out, ToDomainIssue(rec, localPath))
	}
	return out
}

func copyFlow(f domain.Flow) domain.Flow {
	locs := make([]domain.Location, len(f.Locations))
	for i, l := range f.Locations {
		locs[i] = domain.Location{
			Path:      l.Path,
			Message:   l.Message,
			TextRange: copyRange(l.TextRange),
		}
	}
	return domain.Flow{Locations: locs}
}

func copyRange(r *domain.TextRange) *domain.TextRange {
	if r == nil {
		return nil
	}
	c := *r
	return &c
}
