package destination_test

import (
	"file-intake/internal/core/destination"
	"file-intake/internal/core/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVolume(t *testing.T) {
	t.Run("nominal", func(t *testing.T) {
		// Act
		volume, err := destination.ParseVolume("main.default.uploads")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, destination.Volume{Catalog: "main", Schema: "default", Name: "uploads"}, volume)
		assert.Equal(t, "main.default.uploads", volume.String())
	})

	t.Run("surrounding spaces", func(t *testing.T) {
		volume, err := destination.ParseVolume("  users . jdoe . drop ")

		require.NoError(t, err)
		assert.Equal(t, "users.jdoe.drop", volume.String())
	})

	invalid := []string{
		"",
		"main",
		"main.default",
		"a.b.c.d",
		"a..c",
		".b.c",
		"a.b.",
		"a. .c",
		"a/x.b.c",
		`a.b\x.c`,
		"a.b\x00.c",
		"a.sch\x7fema.c",
	}
	for _, identifier := range invalid {
		t.Run("invalid "+identifier, func(t *testing.T) {
			// Act
			_, err := destination.ParseVolume(identifier)

			// Assert
			require.ErrorIs(t, err, domain.ErrInvalidDestinationFormat)
		})
	}
}

func TestResolver_Resolve_Structured(t *testing.T) {
	resolver := destination.NewResolver("")

	t.Run("no subfolder", func(t *testing.T) {
		// Act
		p, err := resolver.Resolve(destination.Spec{Volume: "a.b.c"}, "report.pdf")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "/Volumes/a/b/c/report.pdf", p)
	})

	t.Run("with subfolder", func(t *testing.T) {
		// Act
		p, err := resolver.Resolve(destination.Spec{Volume: "a.b.c", Subfolder: "sub"}, "report.pdf")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "/Volumes/a/b/c/sub/report.pdf", p)
	})

	t.Run("empty subfolder is absent", func(t *testing.T) {
		p, err := resolver.Resolve(destination.Spec{Volume: "a.b.c", Subfolder: ""}, "x.txt")
		require.NoError(t, err)
		assert.Equal(t, "/Volumes/a/b/c/x.txt", p)

		p, err = resolver.Resolve(destination.Spec{Volume: "a.b.c", Subfolder: " / "}, "x.txt")
		require.NoError(t, err)
		assert.Equal(t, "/Volumes/a/b/c/x.txt", p)
	})

	t.Run("nested subfolder", func(t *testing.T) {
		p, err := resolver.Resolve(destination.Spec{Volume: "a.b.c", Subfolder: "/2024/q1/"}, "x.txt")
		require.NoError(t, err)
		assert.Equal(t, "/Volumes/a/b/c/2024/q1/x.txt", p)
	})

	t.Run("volume takes precedence over root", func(t *testing.T) {
		p, err := resolver.Resolve(destination.Spec{Root: "/data", Volume: "a.b.c"}, "x.txt")
		require.NoError(t, err)
		assert.Equal(t, "/Volumes/a/b/c/x.txt", p)
	})

	t.Run("two segments", func(t *testing.T) {
		_, err := resolver.Resolve(destination.Spec{Volume: "main.default"}, "x.txt")
		require.ErrorIs(t, err, domain.ErrInvalidDestinationFormat)
	})

	t.Run("subfolder escaping volume", func(t *testing.T) {
		_, err := resolver.Resolve(destination.Spec{Volume: "a.b.c", Subfolder: "../../other"}, "x.txt")
		require.ErrorIs(t, err, domain.ErrInvalidDestinationFormat)
	})

	t.Run("subfolder with control characters", func(t *testing.T) {
		for _, subfolder := range []string{"bad\x00dir", "q3/ta\tb", "esc\x1b"} {
			_, err := resolver.Resolve(destination.Spec{Volume: "a.b.c", Subfolder: subfolder}, "x.txt")
			require.ErrorIs(t, err, domain.ErrInvalidDestinationFormat, "subfolder %q", subfolder)

			_, err = resolver.Resolve(destination.Spec{Root: "/data", Subfolder: subfolder}, "x.txt")
			require.ErrorIs(t, err, domain.ErrInvalidDestinationFormat, "subfolder %q", subfolder)
		}
	})
}

func TestResolver_Resolve_CustomNamespaceRoot(t *testing.T) {
	resolver := destination.NewResolver("mnt/volumes/")

	p, err := resolver.Resolve(destination.Spec{Volume: "a.b.c"}, "x.txt")

	require.NoError(t, err)
	assert.Equal(t, "/mnt/volumes", resolver.NamespaceRoot())
	assert.Equal(t, "/mnt/volumes/a/b/c/x.txt", p)
}

func TestResolver_Resolve_FlatRoot(t *testing.T) {
	resolver := destination.NewResolver("")

	t.Run("nominal", func(t *testing.T) {
		// Act
		p, err := resolver.Resolve(destination.Spec{Root: "/data"}, "report.pdf")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "/data/report.pdf", p)
	})

	t.Run("trailing slash", func(t *testing.T) {
		p, err := resolver.Resolve(destination.Spec{Root: "/data/"}, "report.pdf")
		require.NoError(t, err)
		assert.Equal(t, "/data/report.pdf", p)
	})

	t.Run("missing root", func(t *testing.T) {
		_, err := resolver.Resolve(destination.Spec{}, "report.pdf")
		require.ErrorIs(t, err, domain.ErrInvalidDestinationFormat)
	})

	t.Run("filename with separator", func(t *testing.T) {
		_, err := resolver.Resolve(destination.Spec{Root: "/data"}, "../report.pdf")
		require.ErrorIs(t, err, domain.ErrInvalidDestinationFormat)
	})
}

func TestResolver_Dir(t *testing.T) {
	resolver := destination.NewResolver("/Volumes")

	dir, err := resolver.Dir(destination.Spec{Volume: "a.b.c", Subfolder: "in"})

	require.NoError(t, err)
	assert.Equal(t, "/Volumes/a/b/c/in", dir)
}
