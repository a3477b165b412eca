package config_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kyeongh0324/two-body-problem/internal/config"
	"github.com/kyeongh0324/two-body-problem/internal/orbit"
)

var _ = Describe("Config", func() {
	Describe("DefaultConfig", func() {
		It("produces a valid session config", func() {
			cfg := config.DefaultConfig()
			Expect(cfg.Orbit().Validate()).To(Succeed())

			_, err := orbit.NewSession(cfg.Orbit())
			Expect(err).NotTo(HaveOccurred())
		})

		It("matches the documented scenario constants", func() {
			cfg := config.DefaultConfig()
			Expect(cfg.G).To(Equal(3700.0))
			Expect(cfg.PrimaryMass).To(Equal(1000.0))
			Expect(cfg.SecondaryMass).To(Equal(1.0))
			Expect(cfg.Separation).To(Equal(150.0))
			Expect(cfg.TrailCapacity).To(Equal(1000))
		})
	})

	Describe("Load and Save", func() {
		It("round-trips through yaml", func() {
			dir := GinkgoT().TempDir()
			path := filepath.Join(dir, "orbit.yaml")

			cfg := config.DefaultConfig()
			cfg.Separation = 222
			cfg.Kick.AngleDeg = 90

			Expect(config.Save(path, cfg)).To(Succeed())

			loaded, err := config.Load(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded).To(Equal(cfg))
		})

		It("fills unset fields from defaults", func() {
			dir := GinkgoT().TempDir()
			path := filepath.Join(dir, "partial.yaml")
			Expect(os.WriteFile(path, []byte("separation: 99\n"), 0644)).To(Succeed())

			loaded, err := config.Load(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded.Separation).To(Equal(99.0))
			Expect(loaded.G).To(Equal(config.DefaultG))
			Expect(loaded.Dt).To(Equal(config.DefaultDt))
		})

		It("fails on a missing file", func() {
			_, err := config.Load("/nonexistent/orbit.yaml")
			Expect(err).To(HaveOccurred())
		})

		It("fails on malformed yaml", func() {
			dir := GinkgoT().TempDir()
			path := filepath.Join(dir, "bad.yaml")
			Expect(os.WriteFile(path, []byte("separation: [oops\n"), 0644)).To(Succeed())

			_, err := config.Load(path)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Presets", func() {
		It("lists every registered preset", func() {
			names := config.ListPresets()
			Expect(names).To(ContainElements("circular", "tight", "distant", "heavy", "grazing"))
		})

		It("returns nil for unknown presets", func() {
			Expect(config.GetPreset("hyperbolic")).To(BeNil())
		})

		It("only registers presets that build a running session", func() {
			for _, name := range config.ListPresets() {
				cfg := config.GetPreset(name)
				Expect(cfg).NotTo(BeNil(), name)

				s, err := orbit.NewSession(cfg.Orbit())
				Expect(err).NotTo(HaveOccurred(), name)
				Expect(s.Paused()).To(BeFalse(), name)
			}
		})

		It("returns fresh copies on every call", func() {
			a := config.GetPreset("tight")
			a.Separation = 1
			b := config.GetPreset("tight")
			Expect(b.Separation).To(Equal(60.0))
		})
	})
})
