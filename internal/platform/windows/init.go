//go:build windows

package windows

import (
	"github.com/mj1618/window-walker/internal/logger"
	"github.com/mj1618/window-walker/internal/platform"
)

func init() {
	platform.NewProviderFunc = func(opts platform.ProviderOptions) (*platform.Provider, error) {
		p := &windowsProvider{}
		a, err := loadAccessor(opts.AccessorDLL)
		if err != nil {
			logger.Warnf("Virtual desktop switching falls back to window activation: %v", err)
		} else {
			p.accessor = a
		}
		return &platform.Provider{
			Reader:        p,
			WindowManager: p,
			Inputter:      p,
		}, nil
	}
}
