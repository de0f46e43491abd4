package configsvc_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"prodsched/internal/configsvc"
)

type ConfigsvcSuite struct {
	suite.Suite
}

func TestConfigsvcSuite(t *testing.T) {
	suite.Run(t, new(ConfigsvcSuite))
}

func (s *ConfigsvcSuite) TestGenerateCacheKeyIsDeterministic() {
	p := configsvc.FetchBundleParams{FleetID: "east-1", Version: "v3"}
	k1 := configsvc.GenerateCacheKey(p)
	k2 := configsvc.GenerateCacheKey(p)
	s.Equal(k1, k2)

	other := configsvc.GenerateCacheKey(configsvc.FetchBundleParams{FleetID: "east-1", Version: "v4"})
	s.NotEqual(k1, other)
}

func (s *ConfigsvcSuite) TestFetchBundleRejectsMissingAPIKey() {
	client := configsvc.NewClient("", "")
	_, err := client.FetchBundle(configsvc.FetchBundleParams{FleetID: "east-1"})
	s.Error(err)
}

func (s *ConfigsvcSuite) TestFetchBundleRejectsMissingFleetID() {
	client := configsvc.NewClient("test-key-0123456789", "")
	_, err := client.FetchBundle(configsvc.FetchBundleParams{})
	s.Error(err)
}
