package display

import (
	"errors"

	"go.uber.org/zap"
	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/ssd1306"

	"github.com/tamzrod/input-remapper/internal/config"
	"github.com/tamzrod/input-remapper/internal/logging"
	"github.com/tamzrod/input-remapper/internal/profile"
	"github.com/tamzrod/input-remapper/internal/render"
)

// OpenSSD1306 configures an SSD1306 panel on an already configured I2C bus.
func OpenSSD1306(bus drivers.I2C, d profile.Display) (*ssd1306.Device, error) {
	if bus == nil {
		return nil, errors.New("display: i2c bus required")
	}
	if d.Type != "" && d.Type != config.DefaultDisplayType {
		logging.Warn("Unsupported display type, using ssd1306", zap.String("type", d.Type))
	}

	dev := ssd1306.NewI2C(bus)
	dev.Configure(ssd1306.Config{
		Width:    d.Width,
		Height:   d.Height,
		Address:  d.Address,
		VccState: ssd1306.SWITCHCAPVCC,
	})
	dev.ClearDisplay()
	return dev, nil
}

// I2COpener returns a render.Opener drawing on an SSD1306 panel.
func I2COpener(bus drivers.I2C) render.Opener {
	return func(d profile.Display) (render.Renderer, error) {
		dev, err := OpenSSD1306(bus, d)
		if err != nil {
			return nil, err
		}
		return NewScreen(dev), nil
	}
}

// FramebufferOpener returns a render.Opener drawing into fb, sized to the
// document's display resolution.
func FramebufferOpener(fb *Framebuffer) render.Opener {
	return func(d profile.Display) (render.Renderer, error) {
		if fb == nil {
			return nil, errors.New("display: framebuffer required")
		}
		fb.Resize(d.Width, d.Height)
		return NewScreen(fb), nil
	}
}

var (
	_ Panel           = (*ssd1306.Device)(nil)
	_ Panel           = (*Framebuffer)(nil)
	_ render.Renderer = (*Screen)(nil)
)
