package tables

// Capacitor variants are the governing specification, used by paper bypass
// capacitors (1) only.
var capacitorCount = &countTable{
	name: "capacitor",
	rows: map[Key]Row{
		{Subcategory: 1, Variant: 1}: {0.0036, 0.0072, 0.330, 0.016, 0.055, 0.023, 0.030, 0.07, 0.13, 0.083, 0.0018, 0.044, 0.12, 2.1},
		{Subcategory: 1, Variant: 2}: {0.0039, 0.0087, 0.042, 0.022, 0.070, 0.035, 0.047, 0.19, 0.35, 0.130, 0.0020, 0.056, 0.19, 2.5},
		{Subcategory: 2}:             {0.0047, 0.0096, 0.044, 0.034, 0.073, 0.030, 0.040, 0.094, 0.15, 0.11, 0.0024, 0.058, 0.18, 2.7},
		{Subcategory: 3}:             {0.0021, 0.0042, 0.017, 0.010, 0.030, 0.0068, 0.013, 0.026, 0.048, 0.044, 0.0010, 0.023, 0.063, 1.1},
		{Subcategory: 4}:             {0.0029, 0.0058, 0.023, 0.014, 0.041, 0.012, 0.018, 0.037, 0.066, 0.060, 0.0014, 0.032, 0.088, 1.5},
		{Subcategory: 5}:             {0.0041, 0.0083, 0.042, 0.021, 0.067, 0.026, 0.048, 0.086, 0.14, 0.10, 0.0020, 0.054, 0.15, 2.5},
		{Subcategory: 6}:             {0.0023, 0.0092, 0.019, 0.012, 0.033, 0.0096, 0.014, 0.034, 0.053, 0.048, 0.0011, 0.026, 0.07, 1.2},
		{Subcategory: 7}:             {0.0005, 0.0015, 0.0091, 0.0044, 0.014, 0.0068, 0.0095, 0.054, 0.069, 0.031, 0.00025, 0.012, 0.046, 0.45},
		{Subcategory: 8}:             {0.018, 0.037, 0.19, 0.094, 0.31, 0.10, 0.14, 0.47, 0.60, 0.48, 0.0091, 0.25, 0.68, 11.0},
		{Subcategory: 9}:             {0.00032, 0.00096, 0.0059, 0.0029, 0.0094, 0.0044, 0.0062, 0.035, 0.045, 0.020, 0.00016, 0.0076, 0.030, 0.29},
		{Subcategory: 10}:            {0.0036, 0.0074, 0.034, 0.019, 0.056, 0.015, 0.015, 0.032, 0.048, 0.077, 0.0014, 0.049, 0.13, 2.3},
		{Subcategory: 11}:            {0.00078, 0.0022, 0.013, 0.0056, 0.023, 0.0077, 0.015, 0.053, 0.12, 0.048, 0.00039, 0.017, 0.065, 0.68},
		{Subcategory: 12}:            {0.0018, 0.0039, 0.016, 0.0097, 0.028, 0.0091, 0.011, 0.034, 0.057, 0.055, 0.00072, 0.022, 0.066, 1.0},
		{Subcategory: 13}:            {0.0061, 0.013, 0.069, 0.039, 0.11, 0.031, 0.061, 0.13, 0.29, 0.18, 0.0030, 0.069, 0.26, 4.0},
		{Subcategory: 14}:            {0.024, 0.061, 0.42, 0.18, 0.59, 0.46, 0.55, 2.1, 2.6, 1.2, 0.012, 0.49, 1.7, 21.0},
		{Subcategory: 15}:            {0.029, 0.081, 0.58, 0.24, 0.83, 0.73, 0.88, 4.3, 5.4, 2.0, 0.015, 0.68, 2.8, 28.0},
		{Subcategory: 16}:            {0.08, 0.27, 1.2, 0.71, 2.3, 0.69, 1.1, 6.2, 12.0, 4.1, 0.032, 1.9, 5.9, 85.0},
		{Subcategory: 17}:            {0.033, 0.13, 0.62, 0.31, 0.93, 0.21, 0.28, 2.2, 3.3, 2.2, 0.16, 0.93, 3.2, 37.0},
		{Subcategory: 18}:            {0.80, 0.33, 1.6, 0.87, 3.0, 1.0, 1.7, 9.9, 19.0, 8.1, 0.032, 2.5, 8.9, 100.0},
		{Subcategory: 19}:            {0.4, 1.3, 6.8, 3.6, 13.0, 5.7, 10.0, 58.0, 90.0, 23.0, 20.0, 0, 0, 0},
	},
	quality: map[Key][]float64{
		{}: {0.030, 0.10, 0.30, 1.0, 3.0, 3.0, 10.0},
	},
}
