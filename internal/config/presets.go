package config

// Presets are ready-made scenes for the run/live/serve commands. Positions
// are in world units; masses and charges stay SI.
var Presets = map[string]*Config{
	"hydrogen": {
		Scene: "hydrogen", Dt: DefaultDt, Steps: 500,
		Atoms: []AtomSpec{
			{AtomicNumber: 1, MassNumber: 1, Position: [3]float64{-1, 0, 0}},
			{AtomicNumber: 1, MassNumber: 1, Position: [3]float64{1, 0, 0}},
		},
	},
	"water": {
		Scene: "water", Dt: DefaultDt, Steps: 500,
		Molecules: []MoleculeSpec{
			{
				Name: "H2O",
				Atoms: []AtomSpec{
					{AtomicNumber: 8, MassNumber: 16, Position: [3]float64{0, 0, 0}},
					{AtomicNumber: 1, MassNumber: 1, Position: [3]float64{1, 0.5, 0}},
					{AtomicNumber: 1, MassNumber: 1, Position: [3]float64{-1, 0.5, 0}},
				},
				Bonds: []BondSpec{{A: 0, B: 1}, {A: 0, B: 2}},
			},
		},
	},
	"dt-fuel": {
		Scene: "dt-fuel", Dt: DefaultDt, Steps: 1000,
		Atoms: []AtomSpec{
			{AtomicNumber: 1, MassNumber: 2, Position: [3]float64{-1, 0, 0}},
			{AtomicNumber: 1, MassNumber: 3, Position: [3]float64{1, 0, 0}},
		},
	},
	"uranium": {
		Scene: "uranium", Dt: DefaultDt, Steps: 200,
		Atoms: []AtomSpec{
			{AtomicNumber: 92, MassNumber: 235, Position: [3]float64{5, 0, 0}},
		},
	},
}

// GetPreset returns a copy of the named preset, so callers can override
// fields without mutating the shared table.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}

	out := *cfg
	out.Atoms = append([]AtomSpec(nil), cfg.Atoms...)
	out.Molecules = make([]MoleculeSpec, len(cfg.Molecules))
	for i, m := range cfg.Molecules {
		m.Atoms = append([]AtomSpec(nil), m.Atoms...)
		m.Bonds = append([]BondSpec(nil), m.Bonds...)
		out.Molecules[i] = m
	}
	return &out
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
