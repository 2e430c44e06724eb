package server

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"io"
	"iter"
	"maps"
	"strconv"
	"strings"

	"go.trai.ch/lintsync/internal/adapters/codec"
	"go.trai.ch/lintsync/internal/core/domain"
	"go.trai.ch/lintsync/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	settingsPath = "api/settings/values"
	profilesPath = "api/qualityprofiles/search"
	treePath     = "api/components/tree"
	issuesPath   = "batch/issues"

	pageSize = 500

	qualifiersModules = "BRC"
	qualifiersFiles   = "FIL,UTS"

	// multiValueSeparator joins multi valued settings.
	multiValueSeparator = ","
)

var (
	_ ports.GlobalFetcher       = (*Client)(nil)
	_ ports.ModuleConfigFetcher = (*Client)(nil)
	_ ports.IssueFetcher        = (*Client)(nil)
	_ ports.FileLister          = (*Client)(nil)
)

// FetchGlobalProperties downloads the server wide settings.
func (c *Client) FetchGlobalProperties(ctx context.Context) (*domain.GlobalProperties, error) {
	settings, err := c.fetchSettings(ctx, "")
	if err != nil {
		return nil, err
	}
	return &domain.GlobalProperties{Properties: settings}, nil
}

// FetchQualityProfiles downloads every quality profile known to the server.
func (c *Client) FetchQualityProfiles(ctx context.Context) (*domain.QualityProfiles, error) {
	profiles, err := c.fetchProfiles(ctx, "")
	if err != nil {
		return nil, err
	}
	out := &domain.QualityProfiles{Profiles: make([]domain.QualityProfile, 0, len(profiles))}
	for _, p := range profiles {
		out.Profiles = append(out.Profiles, domain.QualityProfile{
			Key:      p.Key,
			Name:     p.Name,
			Language: p.Language,
			Default:  p.IsDefault,
		})
	}
	return out, nil
}

// FetchModuleConfiguration downloads the profile bindings, settings and module table of a module.
// Settings whose value equals the global one are dropped.
func (c *Client) FetchModuleConfiguration(
	ctx context.Context,
	moduleKey string,
	global *domain.GlobalProperties,
) (*domain.ModuleConfiguration, error) {
	profiles, err := c.fetchProfiles(ctx, moduleKey)
	if err != nil {
		return nil, err
	}
	byLanguage := make(map[string]string, len(profiles))
	for _, p := range profiles {
		byLanguage[p.Language] = p.Key
	}

	settings, err := c.fetchSettings(ctx, moduleKey)
	if err != nil {
		return nil, err
	}
	if global != nil {
		maps.DeleteFunc(settings, func(k, v string) bool {
			gv, ok := global.Properties[k]
			return ok && gv == v
		})
	}

	project, err := c.fetchModuleTable(ctx, moduleKey)
	if err != nil {
		return nil, err
	}

	return &domain.ModuleConfiguration{
		QualityProfilesByLanguage: byLanguage,
		Settings:                  settings,
		Project:                   project,
	}, nil
}

// FetchIssues streams the issues of a module. A module the server does not know
// yields nothing.
func (c *Client) FetchIssues(ctx context.Context, moduleKey string) iter.Seq2[*domain.ServerIssue, error] {
	return func(yield func(*domain.ServerIssue, error) bool) {
		resp, err := c.open(ctx, issuesPath, []string{param("key", moduleKey)})
		if err != nil {
			if isNotFound(err) {
				return
			}
			yield(nil, zerr.With(zerr.Wrap(err, "failed to fetch issues"), "module_key", moduleKey))
			return
		}
		defer func() {
			_ = resp.Body.Close()
		}()

		r := bufio.NewReader(resp.Body)
		for {
			msg, err := codec.ReadDelimited(r)
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(nil, zerr.With(zerr.Wrap(err, "failed to read issue stream"), "module_key", moduleKey))
				return
			}
			issue, err := codec.UnmarshalServerIssue(msg)
			if err != nil {
				yield(nil, zerr.With(zerr.Wrap(err, "failed to read issue stream"), "module_key", moduleKey))
				return
			}
			if !yield(issue, nil) {
				return
			}
		}
	}
}

// ListFiles returns the keys of every file and test file of a project.
func (c *Client) ListFiles(ctx context.Context, projectKey string) ([]string, error) {
	var keys []string
	err := c.walkTree(ctx, projectKey, qualifiersFiles, func(comp component) {
		keys = append(keys, comp.Key)
	})
	if err != nil {
		return nil, err
	}
	return keys, nil
}

func (c *Client) fetchSettings(ctx context.Context, componentKey string) (map[string]string, error) {
	var query []string
	if componentKey != "" {
		query = append(query, param("component", componentKey))
	}
	var resp settingsResponse
	if err := c.getJSON(ctx, settingsPath, query, &resp); err != nil {
		return nil, err
	}

	out := make(map[string]string, len(resp.Settings))
	for _, s := range resp.Settings {
		if s.Values != nil {
			out[s.Key] = strings.Join(s.Values, multiValueSeparator)
			continue
		}
		out[s.Key] = s.Value
	}
	return out, nil
}

func (c *Client) fetchProfiles(ctx context.Context, projectKey string) ([]profile, error) {
	var query []string
	if projectKey != "" {
		query = append(query, param("project", projectKey))
	}
	var resp profilesResponse
	if err := c.getJSON(ctx, profilesPath, c.withOrganization(query), &resp); err != nil {
		return nil, err
	}
	return resp.Profiles, nil
}

// fetchModuleTable lists the modules below a project in server order. The
// project itself is bound to the empty path.
func (c *Client) fetchModuleTable(ctx context.Context, projectKey string) (domain.ProjectConfiguration, error) {
	table := domain.NewProjectConfiguration(domain.ModulePath{Key: projectKey, Path: ""})
	err := c.walkTree(ctx, projectKey, qualifiersModules, func(comp component) {
		table.Set(comp.Key, strings.Trim(comp.Path, "/"))
	})
	return table, err
}

// walkTree pages through api/components/tree.
func (c *Client) walkTree(ctx context.Context, componentKey, qualifiers string, visit func(component)) error {
	seen := 0
	for page := 1; ; page++ {
		query := []string{
			"qualifiers=" + qualifiers,
			param("component", componentKey),
		}
		query = c.withOrganization(query)
		query = append(query, "ps="+strconv.Itoa(pageSize), "p="+strconv.Itoa(page))

		var resp treeResponse
		if err := c.getJSON(ctx, treePath, query, &resp); err != nil {
			return err
		}
		for _, comp := range resp.Components {
			visit(comp)
		}
		seen += len(resp.Components)
		if len(resp.Components) == 0 || seen >= resp.Paging.Total {
			return nil
		}
	}
}

func (c *Client) getJSON(ctx context.Context, path string, query []string, out any) error {
	data, err := c.get(ctx, path, query)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrServerResponseInvalid.Error()), "path", path)
	}
	return nil
}
