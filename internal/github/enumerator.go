package github

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/redteamtools/trufflehub/internal/models"
	"github.com/redteamtools/trufflehub/internal/urlhandler"
)

// RepositoryLister is the API surface the enumerator needs from the client.
type RepositoryLister interface {
	ListOrgRepositories(ctx context.Context, org string) ([]models.RepositoryRef, error)
	ListUserRepositories(ctx context.Context, user string) ([]models.RepositoryRef, error)
	ListOrgMembers(ctx context.Context, org string) ([]string, error)
}

// Enumerator expands a Target into the final, sorted, de-duplicated list of
// repositories to scan. A single-repository target is resolved locally with
// zero API calls.
type Enumerator struct {
	client RepositoryLister
	logger zerolog.Logger
}

// NewEnumerator creates a new Enumerator.
func NewEnumerator(client RepositoryLister, logger zerolog.Logger) *Enumerator {
	return &Enumerator{
		client: client,
		logger: logger.With().Str("component", "Enumerator").Logger(),
	}
}

// Enumerate resolves the target into repository refs. Failures while listing
// the primary target are fatal; failures while expanding organization members
// are logged and skipped, since the organization's own repositories have
// already been collected.
func (e *Enumerator) Enumerate(ctx context.Context, target models.Target, opts models.EnumerationOptions) ([]models.RepositoryRef, error) {
	var repos []models.RepositoryRef

	switch target.Kind {
	case models.TargetRepository:
		ref, err := urlhandler.ParseRepoURL(target.Value)
		if err != nil {
			return nil, NewEnumerationError(target.Value, err)
		}
		repos = append(repos, ref)

	case models.TargetOrganization:
		orgRepos, err := e.client.ListOrgRepositories(ctx, target.Value)
		if err != nil {
			return nil, err
		}
		e.logger.Info().Str("org", target.Value).Int("count", len(orgRepos)).Msg("Found organization repositories")
		repos = append(repos, orgRepos...)

		if opts.IncludeMembers {
			memberRepos := e.enumerateMembers(ctx, target.Value)
			repos = append(repos, memberRepos...)
		}

	case models.TargetUser:
		userRepos, err := e.client.ListUserRepositories(ctx, target.Value)
		if err != nil {
			return nil, err
		}
		e.logger.Info().Str("user", target.Value).Int("count", len(userRepos)).Msg("Found user repositories")
		repos = append(repos, userRepos...)

	default:
		return nil, NewEnumerationError(target.Value, fmt.Errorf("unknown target kind '%s'", target.Kind))
	}

	if !opts.IncludeForks {
		repos = excludeForks(repos)
	}

	return dedupeAndSort(repos), nil
}

// enumerateMembers lists organization members and expands each member's
// repositories. Per-member failures are non-fatal; a rate limit aborts the
// expansion early since every following member call would hit it too.
func (e *Enumerator) enumerateMembers(ctx context.Context, org string) []models.RepositoryRef {
	members, err := e.client.ListOrgMembers(ctx, org)
	if err != nil {
		e.logger.Warn().Err(err).Str("org", org).Msg("Failed to list organization members, skipping member expansion")
		return nil
	}
	e.logger.Info().Str("org", org).Int("count", len(members)).Msg("Found organization members")

	var repos []models.RepositoryRef
	for _, member := range members {
		if ctx.Err() != nil {
			break
		}
		memberRepos, err := e.client.ListUserRepositories(ctx, member)
		if err != nil {
			var rateLimited *RateLimitedError
			if errors.As(err, &rateLimited) {
				e.logger.Warn().Err(err).Msg("Rate limited during member expansion, stopping early")
				break
			}
			e.logger.Warn().Err(err).Str("member", member).Msg("Failed to list member repositories, skipping")
			continue
		}
		if len(memberRepos) > 0 {
			e.logger.Debug().Str("member", member).Int("count", len(memberRepos)).Msg("Member repositories")
		}
		repos = append(repos, memberRepos...)
	}
	return repos
}

// excludeForks drops refs whose fork flag is set. The flag always comes from
// the owning repository's own API metadata.
func excludeForks(repos []models.RepositoryRef) []models.RepositoryRef {
	filtered := repos[:0]
	for _, repo := range repos {
		if !repo.Fork {
			filtered = append(filtered, repo)
		}
	}
	return filtered
}

// dedupeAndSort keys repositories by clone URL so member expansion does not
// scan the same repository twice, and sorts for a stable scan order.
func dedupeAndSort(repos []models.RepositoryRef) []models.RepositoryRef {
	seen := make(map[string]bool, len(repos))
	unique := make([]models.RepositoryRef, 0, len(repos))
	for _, repo := range repos {
		if seen[repo.CloneURL] {
			continue
		}
		seen[repo.CloneURL] = true
		unique = append(unique, repo)
	}

	sort.Slice(unique, func(i, j int) bool {
		return unique[i].CloneURL < unique[j].CloneURL
	})
	return unique
}
