package config

var Presets = map[string]map[string]*Config{
	"exponential": {
		"unit": {
			Problem: "exponential", Method: "rk4", Steps: 100,
			Xi: 1.0, Ti: 0.0, Tf: 1.0,
		},
		"fast": {
			Problem: "exponential", Method: "rk4", Steps: 400,
			Xi: 1.0, Ti: 0.0, Tf: 5.0,
			Params: map[string]float64{"rate": 2.0},
		},
	},
	"linear_forced": {
		"reference": {
			Problem: "linear_forced", Method: "rk4", Steps: 10,
			Xi: 0.0, Ti: 0.0, Tf: 10.0,
		},
		"dense": {
			Problem: "linear_forced", Method: "rk4", Steps: 1000,
			Xi: 0.0, Ti: 0.0, Tf: 10.0,
		},
	},
	"decay": {
		"halflife": {
			Problem: "decay", Method: "rk2", Steps: 200,
			Xi: 1.0, Ti: 0.0, Tf: 10.0,
			Params: map[string]float64{"lambda": 0.693},
		},
		"slow": {
			Problem: "decay", Method: "euler", Steps: 500,
			Xi: 1.0, Ti: 0.0, Tf: 20.0,
			Params: map[string]float64{"lambda": 0.1},
		},
	},
	"logistic": {
		"saturating": {
			Problem: "logistic", Method: "rk4", Steps: 300,
			Xi: 0.5, Ti: 0.0, Tf: 15.0,
		},
		"crowded": {
			Problem: "logistic", Method: "rk4", Steps: 300,
			Xi: 15.0, Ti: 0.0, Tf: 10.0,
		},
	},
	"cosine": {
		"slow": {
			Problem: "cosine", Method: "rk2", Steps: 400,
			Xi: 0.0, Ti: 0.0, Tf: 20.0,
			Params: map[string]float64{"omega": 0.5},
		},
	},
}

func GetPreset(problem, preset string) *Config {
	problemPresets, ok := Presets[problem]
	if !ok {
		return nil
	}
	cfg, ok := problemPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(problem string) []string {
	problemPresets, ok := Presets[problem]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(problemPresets))
	for name := range problemPresets {
		names = append(names, name)
	}
	return names
}
