package domain

import (
	"fmt"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// Variant is one concrete combination of requirements a package can be built against.
// Order is significant: it encodes priority for the consuming resolver.
type Variant []PackageRef

// VariantPredicate decides whether a variant at a given position is acceptable.
type VariantPredicate func(index int, v Variant) bool

// Equal reports whether both variants list the same references in the same order.
func (v Variant) Equal(other Variant) bool {
	return slices.Equal(v, other)
}

// Key returns a stable 64-bit digest of the variant used to bucket duplicates.
func (v Variant) Key() uint64 {
	hasher := xxhash.New()
	for _, ref := range v {
		_, _ = hasher.WriteString(ref.String())
		_, _ = hasher.Write([]byte{0})
	}
	return hasher.Sum64()
}

// Subpath returns the install subdirectory for the variant ("platform-linux/arch-x86_64/...").
func (v Variant) Subpath() string {
	parts := make([]string, len(v))
	for i, ref := range v {
		parts[i] = ref.String()
	}
	return strings.Join(parts, "/")
}

// Strings renders every reference in order.
func (v Variant) Strings() []string {
	res := make([]string, len(v))
	for i, ref := range v {
		res[i] = ref.String()
	}
	return res
}

// ValidateVariants fails with ErrDuplicateVariant if two variants are element-wise identical.
func ValidateVariants(variants []Variant) error {
	buckets := make(map[uint64][]int, len(variants))
	for i, v := range variants {
		key := v.Key()
		for _, j := range buckets[key] {
			if variants[j].Equal(v) {
				err := zerr.With(zerr.Wrap(ErrDuplicateVariant, "invalid variant matrix"), "first_index", j)
				err = zerr.With(err, "duplicate_index", i)
				return zerr.With(err, "variant", v.Subpath())
			}
		}
		buckets[key] = append(buckets[key], i)
	}
	return nil
}

// SelectVariant returns the first variant satisfying pred along with its index.
func SelectVariant(variants []Variant, pred VariantPredicate) (int, Variant, error) {
	for i, v := range variants {
		if pred(i, v) {
			return i, v, nil
		}
	}
	err := zerr.Wrap(ErrNoMatchingVariant, "cannot select variant")
	return -1, nil, zerr.With(err, "variant_count", len(variants))
}

// Contains matches variants that list ref exactly.
func Contains(ref PackageRef) VariantPredicate {
	return func(_ int, v Variant) bool {
		return slices.Contains(v, ref)
	}
}

// Satisfies matches variants holding a reference that satisfies req.
func Satisfies(req PackageRef) VariantPredicate {
	return func(_ int, v Variant) bool {
		return slices.ContainsFunc(v, func(ref PackageRef) bool {
			return ref.Satisfies(req)
		})
	}
}

// Index matches only the variant at position i.
func Index(i int) VariantPredicate {
	return func(index int, _ Variant) bool {
		return index == i
	}
}

// All matches variants accepted by every predicate. With no predicates it matches everything.
func All(preds ...VariantPredicate) VariantPredicate {
	return func(index int, v Variant) bool {
		for _, p := range preds {
			if !p(index, v) {
				return false
			}
		}
		return true
	}
}

// String implements fmt.Stringer.
func (v Variant) String() string {
	return fmt.Sprintf("[%s]", strings.Join(v.Strings(), ", "))
}
