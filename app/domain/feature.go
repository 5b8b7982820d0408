package domain

// Feature names an application capability that UI surfaces gate on
type Feature string

const (
	// Basic browsing features, open to everyone including guests
	FeatureViewPlaces    Feature = "view_places"
	FeatureViewGuides    Feature = "view_guides"
	FeatureBrowseContent Feature = "browse_content"
	FeatureViewNews      Feature = "view_news"

	// Verified-only features
	FeatureCreateJourney Feature = "create_journey"
	FeatureWriteReview   Feature = "write_review"
	FeatureUploadPhoto   Feature = "upload_photo"
	FeatureSyncFavorites Feature = "sync_favorites"
)

// basicFeatures are always allowed, for any state including Guest and None
var basicFeatures = map[Feature]bool{
	FeatureViewPlaces:    true,
	FeatureViewGuides:    true,
	FeatureBrowseContent: true,
	FeatureViewNews:      true,
}

// FeaturePolicy decides feature access from the verification state. The zero
// value uses the built-in basic set; Extend can widen it (never shrink it)
// from deployment configuration.
type FeaturePolicy struct {
	extraBasic map[Feature]bool
}

// NewFeaturePolicy creates a policy with the built-in basic feature set
func NewFeaturePolicy() *FeaturePolicy {
	return &FeaturePolicy{extraBasic: make(map[Feature]bool)}
}

// Extend adds deployment-specific features to the always-allowed set
func (p *FeaturePolicy) Extend(features []Feature) {
	if p.extraBasic == nil {
		p.extraBasic = make(map[Feature]bool)
	}
	for _, f := range features {
		p.extraBasic[f] = true
	}
}

// CanAccess maps (state, feature) to an allow decision. Pure: no side effects,
// no state mutation. Unrecognized features require Verified.
func (p *FeaturePolicy) CanAccess(state VerificationState, feature Feature) bool {
	if basicFeatures[feature] {
		return true
	}
	if p != nil && p.extraBasic[feature] {
		return true
	}
	return state == StateVerified
}

// IsBasicFeature reports whether the feature belongs to the built-in open set
func IsBasicFeature(feature Feature) bool {
	return basicFeatures[feature]
}

// CanAccessFeature is the package-level policy check with the default policy
func CanAccessFeature(state VerificationState, feature Feature) bool {
	return (*FeaturePolicy)(nil).CanAccess(state, feature)
}
