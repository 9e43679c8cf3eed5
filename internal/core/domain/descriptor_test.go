package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pkgdesc/internal/core/domain"
)

func weightDriver(t *testing.T) *domain.Descriptor {
	t.Helper()
	return &domain.Descriptor{
		Name:          "weightDriver",
		Authors:       []string{"Brave Rabbit"},
		RawVersion:    "3.6.0.sse.1.1.0",
		UUID:          "repository.BraveRabbit_weightDriver",
		ReleaseTarget: domain.ReleaseExternal,
		Release:       domain.DefaultReleaseConfig(),
		Requires:      []domain.PackageRef{mustRef(t, "cmake-3")},
		Variants:      mayaMatrix(t),
		Prereqs:       domain.DefaultPrereqRules(),
		Layout:        domain.DefaultEnvLayout("weightDriver"),
	}
}

func TestDescriptor_Validate(t *testing.T) {
	require.NoError(t, weightDriver(t).Validate())

	t.Run("Missing name", func(t *testing.T) {
		d := weightDriver(t)
		d.Name = ""
		require.ErrorIs(t, d.Validate(), domain.ErrMissingPackageName)
	})

	t.Run("Missing version", func(t *testing.T) {
		d := weightDriver(t)
		d.RawVersion = ""
		require.ErrorIs(t, d.Validate(), domain.ErrMissingVersion)
	})

	t.Run("Malformed version", func(t *testing.T) {
		d := weightDriver(t)
		d.RawVersion = "1.sse.2.sse.3"
		require.ErrorIs(t, d.Validate(), domain.ErrMalformedVersion)
	})

	t.Run("Unknown release target", func(t *testing.T) {
		d := weightDriver(t)
		d.ReleaseTarget = ""
		require.ErrorIs(t, d.Validate(), domain.ErrUnknownReleaseTarget)
	})

	t.Run("Duplicate variant", func(t *testing.T) {
		d := weightDriver(t)
		d.Variants = append(d.Variants, d.Variants[0])
		require.ErrorIs(t, d.Validate(), domain.ErrDuplicateVariant)
	})
}

func TestDescriptor_Version(t *testing.T) {
	parts, err := weightDriver(t).Version()
	require.NoError(t, err)
	assert.Equal(t, domain.VersionParts{External: "3.6.0", Internal: "1.1.0", HasInternal: true}, parts)
}

func TestNewBuildPlan(t *testing.T) {
	d := weightDriver(t)
	d.PrivateBuildRequires = []domain.PackageRef{mustRef(t, "ninja")}

	plan := domain.NewBuildPlan(d, 2, d.Variants[2])

	assert.Equal(t, "weightDriver", plan.Package)
	assert.Equal(t, "3.6.0.sse.1.1.0", plan.Version)
	assert.Equal(t, 2, plan.VariantIndex)
	assert.Equal(t, domain.ReleaseExternal, plan.ReleaseTarget)
	assert.Equal(t, "platform-linux/arch-x86_64/os-centos-7/maya-2023/python-3/maya_devkit-2023", plan.Subpath)
	assert.Equal(t, []string{"cmake-3"}, plan.Requires)
	assert.Equal(t, []string{
		"cmake-3", "ninja",
		"platform-linux", "arch-x86_64", "os-centos-7", "maya-2023", "python-3", "maya_devkit-2023",
	}, plan.BuildRequires)
	assert.Len(t, plan.ID, 16)
}

func TestNewBuildPlan_IDIsDeterministic(t *testing.T) {
	d := weightDriver(t)

	a := domain.NewBuildPlan(d, 0, d.Variants[0])
	b := domain.NewBuildPlan(d, 0, d.Variants[0])
	c := domain.NewBuildPlan(d, 1, d.Variants[1])

	assert.Equal(t, a.ID, b.ID)
	assert.NotEqual(t, a.ID, c.ID)
	assert.Equal(t, a.ID, domain.GeneratePlanID(a.Package, a.Version, a.BuildRequires))
}
