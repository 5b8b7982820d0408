package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"guide-auth/app/domain"
)

// featurePolicyFile is the YAML shape of a deployment policy file:
//
//	basic_features:
//	  - view_map
//	  - view_events
type featurePolicyFile struct {
	BasicFeatures []string `yaml:"basic_features"`
}

// LoadFeaturePolicy builds the feature policy, extending the built-in basic
// set from the configured YAML file when one is set. Deployment files can
// only widen the open set, never restrict it.
func LoadFeaturePolicy(path string) (*domain.FeaturePolicy, error) {
	policy := domain.NewFeaturePolicy()
	if path == "" {
		return policy, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read feature policy file: %w", err)
	}

	var file featurePolicyFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse feature policy file: %w", err)
	}

	extra := make([]domain.Feature, 0, len(file.BasicFeatures))
	for _, name := range file.BasicFeatures {
		if name == "" {
			continue
		}
		extra = append(extra, domain.Feature(name))
	}
	policy.Extend(extra)

	return policy, nil
}
