package tables

var (
	resistorFilmLow  = Row{0.0012, 0.0027, 0.011, 0.0054, 0.020, 0.0063, 0.013, 0.018, 0.033, 0.030, 0.00025, 0.014, 0.044, 0.69}
	resistorFilmHigh = Row{0.0014, 0.0031, 0.013, 0.0061, 0.023, 0.0072, 0.014, 0.021, 0.038, 0.034, 0.00028, 0.016, 0.050, 0.78}
)

// Resistor variants are the governing specification for film (2) and
// wirewound power (6) resistors.
var resistorCount = &countTable{
	name: "resistor",
	rows: map[Key]Row{
		{Subcategory: 1}:             {0.0005, 0.0022, 0.0071, 0.0037, 0.012, 0.0052, 0.0065, 0.016, 0.025, 0.025, 0.00025, 0.0098, 0.035, 0.36},
		{Subcategory: 2, Variant: 1}: resistorFilmLow,
		{Subcategory: 2, Variant: 2}: resistorFilmLow,
		{Subcategory: 2, Variant: 3}: resistorFilmHigh,
		{Subcategory: 2, Variant: 4}: resistorFilmHigh,
		{Subcategory: 3}:             {0.012, 0.025, 0.13, 0.062, 0.21, 0.078, 0.10, 0.19, 0.24, 0.32, 0.0060, 0.18, 0.47, 8.2},
		{Subcategory: 4}:             {0.0023, 0.0066, 0.031, 0.013, 0.055, 0.022, 0.043, 0.077, 0.15, 0.10, 0.0011, 0.055, 0.15, 1.7},
		{Subcategory: 5}:             {0.0085, 0.018, 0.10, 0.045, 0.16, 0.15, 0.17, 0.30, 0.38, 0.26, 0.0068, 0.13, 0.37, 5.4},
		{Subcategory: 6, Variant: 1}: {0.014, 0.031, 0.16, 0.077, 0.26, 0.073, 0.15, 0.19, 0.39, 0.42, 0.0042, 0.21, 0.62, 9.4},
		{Subcategory: 6, Variant: 2}: {0.013, 0.028, 0.15, 0.070, 0.24, 0.065, 0.13, 0.18, 0.35, 0.38, 0.0038, 0.19, 0.56, 8.6},
		{Subcategory: 7}:             {0.008, 0.18, 0.096, 0.045, 0.15, 0.044, 0.088, 0.12, 0.24, 0.25, 0.004, 0.13, 0.37, 5.5},
		{Subcategory: 8}:             {0.065, 0.32, 1.4, 0.71, 1.6, 0.71, 1.9, 1.0, 2.7, 2.4, 0.032, 1.3, 3.4, 62.0},
		{Subcategory: 9}:             {0.025, 0.055, 0.35, 0.15, 0.58, 0.16, 0.26, 0.35, 0.58, 1.1, 0.013, 0.52, 1.6, 24.0},
		{Subcategory: 10}:            {0.33, 0.73, 7.0, 2.9, 12.0, 3.5, 5.3, 7.1, 9.8, 23.0, 0.16, 11.0, 33.0, 510.0},
		{Subcategory: 11}:            {0.15, 0.35, 3.1, 1.2, 5.4, 1.9, 2.8, 0, 0, 9.0, 0.075, 0, 0, 0},
		{Subcategory: 12}:            {0.15, 0.34, 2.9, 1.2, 5.0, 1.6, 2.4, 0, 0, 7.6, 0.076, 0, 0, 0},
		{Subcategory: 13}:            {0.043, 0.15, 0.75, 0.35, 1.3, 0.39, 0.78, 1.8, 2.8, 2.5, 0.21, 1.2, 3.7, 49.0},
		{Subcategory: 14}:            {0.05, 0.11, 1.1, 0.45, 1.7, 2.8, 4.6, 4.6, 7.5, 3.3, 0.025, 1.5, 4.7, 67.0},
		{Subcategory: 15}:            {0.048, 0.16, 0.76, 0.36, 1.3, 0.36, 0.72, 1.4, 2.2, 2.3, 0.024, 1.2, 3.4, 52.0},
	},
	quality: map[Key][]float64{
		{}: {0.030, 0.10, 0.30, 1.0, 3.0, 10.0},
	},
}
