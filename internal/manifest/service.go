package manifest

import (
	"context"
)

// DefaultPath is used when Save or Load is given an empty path.
const DefaultPath = "./package.json"

// DefaultTestScript is the placeholder "test" script of a new manifest.
const DefaultTestScript = `echo "Error: no test specified" && exit 1`

// New returns the default package.json template for appName. appName is not
// checked against package naming rules.
func New(appName string) *PackageJSON {
	return &PackageJSON{
		Name:        appName,
		Version:     "1.0.0",
		Description: "",
		Main:        "index.js",
		Scripts: map[string]string{
			"test": DefaultTestScript,
		},
		Keywords: []string{},
		Author:   AuthorString(""),
		License:  "ISC",
	}
}

// SaveSync writes pkg to path, replacing any existing file.
func SaveSync(pkg *PackageJSON, path string) error {
	return WriteFile(resolvePath(path), pkg, DefaultWriteOptions())
}

// LoadSync reads the manifest at path. The result is not validated: a file
// missing required fields decodes with those fields left empty.
func LoadSync(path string) (*PackageJSON, error) {
	var pkg PackageJSON
	if err := ReadFile(resolvePath(path), &pkg, DefaultReadOptions()); err != nil {
		return nil, err
	}
	return &pkg, nil
}

// Save is the asynchronous form of SaveSync. The write runs on its own
// goroutine; Save returns when it finishes or when ctx is done, in which
// case the write still completes in the background.
func Save(ctx context.Context, pkg *PackageJSON, path string) error {
	_, err := await(ctx, func() (struct{}, error) {
		return struct{}{}, SaveSync(pkg, path)
	})
	return err
}

// Load is the asynchronous form of LoadSync.
func Load(ctx context.Context, path string) (*PackageJSON, error) {
	return await(ctx, func() (*PackageJSON, error) {
		return LoadSync(path)
	})
}

type result[T any] struct {
	val T
	err error
}

// await runs fn on a new goroutine and waits for it or for ctx.
func await[T any](ctx context.Context, fn func() (T, error)) (T, error) {
	if err := ctx.Err(); err != nil {
		var zero T
		return zero, err
	}

	done := make(chan result[T], 1) // buffered so fn never blocks after cancellation
	go func() {
		v, err := fn()
		done <- result[T]{val: v, err: err}
	}()

	select {
	case r := <-done:
		return r.val, r.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

func resolvePath(path string) string {
	if path == "" {
		return DefaultPath
	}
	return path
}
