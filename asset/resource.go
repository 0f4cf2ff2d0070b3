package asset

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// A Resource is a readable local file or http/https stream. Scene layouts
// are loaded through resources so that they may be shared over http.
type Resource struct {
	io.ReadCloser
	url *url.URL
}

// Path returns the location of this resource.
func (r *Resource) Path() string {
	return r.url.String()
}

// IsRemote returns true if the resource is streamed over http/https.
func (r *Resource) IsRemote() bool {
	return r.url.Scheme != ""
}

// Normalize a resource path. Backslash separators are converted to forward
// slashes so that windows-style paths such as `..\img\sky.tex` resolve on
// every platform.
func normalize(pathToResource string) (*url.URL, error) {
	return url.Parse(strings.Replace(pathToResource, `\`, `/`, -1))
}

// Resolve returns the location of pathToResource. If relTo is specified and
// pathToResource is a relative path without a scheme, the result is relative
// to the directory containing relTo. Resolve does not access the resource.
func Resolve(pathToResource string, relTo *Resource) (string, error) {
	u, err := resolve(pathToResource, relTo)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" {
		return filepath.FromSlash(u.Path), nil
	}
	return u.String(), nil
}

func resolve(pathToResource string, relTo *Resource) (*url.URL, error) {
	u, err := normalize(pathToResource)
	if err != nil {
		return nil, fmt.Errorf("resource: invalid path %q: %w", pathToResource, err)
	}

	if u.Scheme != "" || relTo == nil || path.IsAbs(u.Path) {
		return u, nil
	}

	base := *relTo.url
	if base.Scheme == "" {
		dir := filepath.ToSlash(filepath.Dir(base.Path))
		base.Path = path.Join(dir, u.Path)
		return &base, nil
	}
	base.Path = path.Join(path.Dir(base.Path), u.Path)
	return &base, nil
}

// Open a resource stream. Relative paths are resolved against relTo as
// described in Resolve. The caller must close the returned resource.
func Open(ctx context.Context, pathToResource string, relTo *Resource) (*Resource, error) {
	u, err := resolve(pathToResource, relTo)
	if err != nil {
		return nil, err
	}

	var reader io.ReadCloser
	switch u.Scheme {
	case "":
		reader, err = os.Open(filepath.Clean(filepath.FromSlash(u.Path)))
		if err != nil {
			return nil, err
		}
	case "http", "https":
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
		if err != nil {
			return nil, err
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("resource: could not fetch '%s': %s", u.String(), err)
		}
		if resp.StatusCode >= 400 {
			resp.Body.Close()
			return nil, fmt.Errorf("resource: could not fetch '%s': status %d", u.String(), resp.StatusCode)
		}
		reader = resp.Body
	default:
		return nil, fmt.Errorf("resource: unsupported scheme '%s'", u.Scheme)
	}

	return &Resource{
		ReadCloser: reader,
		url:        u,
	}, nil
}
