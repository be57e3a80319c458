package tables

// Inductor variants are the device family.
var inductorCount = &countTable{
	name: "inductive device",
	rows: map[Key]Row{
		{Subcategory: 1, Variant: 1}: {0.0035, 0.023, 0.049, 0.019, 0.065, 0.027, 0.037, 0.041, 0.052, 0.11, 0.0018, 0.053, 0.16, 2.3},
		{Subcategory: 1, Variant: 2}: {0.0071, 0.046, 0.097, 0.038, 0.13, 0.055, 0.073, 0.081, 0.10, 0.22, 0.035, 0.11, 0.31, 4.7},
		{Subcategory: 1, Variant: 3}: {0.023, 0.16, 0.35, 0.13, 0.45, 0.21, 0.27, 0.35, 0.45, 0.82, 0.011, 0.37, 1.2, 16},
		{Subcategory: 1, Variant: 4}: {0.028, 0.18, 0.39, 0.15, 0.52, 0.22, 0.29, 0.33, 0.42, 0.88, 0.015, 0.42, 1.2, 19},
		{Subcategory: 2, Variant: 1}: {0.0017, 0.0073, 0.023, 0.0091, 0.031, 0.011, 0.015, 0.016, 0.022, 0.052, 0.00083, 0.25, 0.073, 1.1},
		{Subcategory: 2, Variant: 2}: {0.0033, 0.015, 0.046, 0.018, 0.061, 0.022, 0.03, 0.033, 0.044, 0.10, 0.0017, 0.05, 0.15, 2.2},
	},
	quality: map[Key][]float64{
		{Subcategory: 1}: {1.0, 3.0},
		{Subcategory: 2}: {0.03, 0.1, 0.3, 1.0, 3.0},
	},
}

// Relay variants are the relay type.
var relayCount = &countTable{
	name: "relay",
	rows: map[Key]Row{
		{Subcategory: 1, Variant: 1}: {0.13, 0.28, 2.1, 1.1, 3.8, 1.1, 1.4, 1.9, 2.0, 7.0, 0.66, 3.5, 10, 0},
		{Subcategory: 1, Variant: 2}: {0.43, 0.89, 6.9, 3.6, 12, 3.4, 4.4, 6.2, 6.7, 22, 0.21, 11, 32, 0},
		{Subcategory: 1, Variant: 3}: {0.13, 0.26, 2.1, 1.1, 3.8, 1.1, 1.4, 1.9, 2.0, 7.0, 0.66, 3.5, 10, 0},
		{Subcategory: 1, Variant: 4}: {0.11, 0.23, 1.8, 0.92, 3.3, 0.96, 1.2, 2.1, 2.3, 6.5, 0.54, 3.0, 9.0, 0},
		{Subcategory: 1, Variant: 5}: {0.29, 0.60, 4.8, 2.4, 8.2, 2.3, 2.9, 4.1, 4.5, 15, 0.14, 7.6, 22, 0},
		{Subcategory: 1, Variant: 6}: {0.88, 1.8, 14, 7.4, 26, 7.1, 9.1, 13, 14, 46, 0.44, 24, 67, 0},
		{Subcategory: 2, Variant: 1}: {0.40, 1.2, 4.8, 2.4, 6.8, 4.8, 7.6, 8.4, 13, 9.2, 0.16, 4.8, 13, 240},
		{Subcategory: 2, Variant: 2}: {0.50, 1.5, 6.0, 3.0, 8.5, 5.0, 9.5, 11, 16, 12, 0.20, 5.0, 17, 300},
	},
	quality: map[Key][]float64{
		{Subcategory: 1}: {0.6, 3.0, 9.0},
		{Subcategory: 2}: {1.0, 4.0},
	},
}

var switchCount = &countTable{
	name: "switch",
	rows: map[Key]Row{
		{Subcategory: 1}: {0.0010, 0.0030, 0.018, 0.0080, 0.029, 0.010, 0.018, 0.013, 0.022, 0.046, 0.0005, 0.025, 0.067, 1.2},
		{Subcategory: 2}: {0.15, 0.44, 2.7, 1.2, 4.3, 1.5, 2.7, 1.9, 3.3, 6.8, 0.74, 3.7, 9.9, 180},
		{Subcategory: 3}: {0.33, 0.99, 5.9, 2.6, 9.5, 3.3, 5.9, 4.3, 7.2, 15, 0.16, 8.2, 22, 390},
		{Subcategory: 4}: {0.56, 1.7, 10, 4.5, 16, 5.6, 10, 7.3, 12, 26, 0.26, 14, 38, 670},
		{Subcategory: 5}: {0.11, 0.23, 1.7, 0.91, 3.1, 0.80, 1.0, 1.3, 1.4, 5.2, 0.057, 2.8, 7.5, 0},
	},
	quality: map[Key][]float64{
		{Subcategory: 1}: {1.0, 20.0},
		{Subcategory: 2}: {1.0, 20.0},
		{Subcategory: 3}: {1.0, 50.0},
		{Subcategory: 4}: {1.0, 10.0},
		{Subcategory: 5}: {1.0, 8.4},
	},
}

// Connection variants are the connector type (1) or the soldered
// connection type (5).
var connectionCount = &countTable{
	name: "connection",
	rows: map[Key]Row{
		{Subcategory: 1, Variant: 1}: {0.011, 0.14, 0.11, 0.069, 0.20, 0.058, 0.098, 0.23, 0.34, 0.37, 0.0054, 0.16, 0.42, 6.8},
		{Subcategory: 1, Variant: 2}: {0.012, 0.015, 0.13, 0.075, 0.21, 0.06, 0.1, 0.22, 0.32, 0.38, 0.0061, 0.18, 0.54, 7.3},
		{Subcategory: 2}:             {0.0054, 0.021, 0.055, 0.035, 0.10, 0.059, 0.11, 0.085, 0.16, 0.19, 0.0027, 0.078, 0.21, 3.4},
		{Subcategory: 3}:             {0.0019, 0.0058, 0.027, 0.012, 0.035, 0.015, 0.023, 0.021, 0.025, 0.048, 0.00097, 0.027, 0.070, 1.3},
		{Subcategory: 4}:             {0.053, 0.11, 0.37, 0.69, 0.27, 0.27, 0.43, 0.85, 1.5, 1.0, 0.027, 0.53, 1.4, 27},
		{Subcategory: 5, Variant: 1}: {0.0026, 0.0052, 0.018, 0.010, 0.029, 0.010, 0.016, 0.016, 0.021, 0.042, 0.0013, 0.023, 0.062, 1.1},
		{Subcategory: 5, Variant: 2}: {0.00014, 0.00028, 0.00096, 0.00056, 0.0015, 0.00056, 0.00084, 0.00084, 0.0011, 0.0022, 0.00007, 0.0013, 0.0034, 0.059},
		{Subcategory: 5, Variant: 3}: {0.00026, 0.00052, 0.0018, 0.0010, 0.0029, 0.0010, 0.0016, 0.0016, 0.0021, 0.0042, 0.00013, 0.0023, 0.0062, 0.11},
		{Subcategory: 5, Variant: 4}: {0.00005, 0.0001, 0.00035, 0.0002, 0.00055, 0.0002, 0.0003, 0.0003, 0.0004, 0.0008, 0.000025, 0.00045, 0.0012, 0.021},
		{Subcategory: 5, Variant: 5}: {0.0000035, 0.000007, 0.000025, 0.000014, 0.000039, 0.000014, 0.000021, 0.000021, 0.000028, 0.000056, 0.0000018, 0.000031, 0.000084, 0.0015},
		{Subcategory: 5, Variant: 6}: {0.00012, 0.00024, 0.00084, 0.00048, 0.0013, 0.00048, 0.00072, 0.00072, 0.00096, 0.0019, 0.00005, 0.0011, 0.0029, 0.050},
		{Subcategory: 5, Variant: 7}: {0.000069, 0.000138, 0.000483, 0.000276, 0.000759, 0.000276, 0.000414, 0.000414, 0.000552, 0.001104, 0.000035, 0.000621, 0.001656, 0.02898},
	},
	quality: map[Key][]float64{
		{}: {1.0, 2.0},
	},
}

var meterCount = &countTable{
	name: "meter",
	rows: map[Key]Row{
		{Subcategory: 1}: {10, 20, 120, 70, 180, 50, 80, 160, 250, 260, 5.0, 140, 380, 0},
		{Subcategory: 2}: {0.090, 0.36, 2.3, 1.1, 3.2, 2.5, 3.8, 5.2, 6.6, 5.4, 0.099, 5.4, 0, 0},
	},
	quality: map[Key][]float64{
		{Subcategory: 1}: {1.0, 1.0},
		{Subcategory: 2}: {1.0, 3.4},
	},
}

var miscCount = &countTable{
	name: "miscellaneous",
	rows: map[Key]Row{
		{Subcategory: 1}: {0.032, 0.096, 0.32, 0.19, 0.51, 0.38, 0.54, 0.70, 0.90, 0.74, 0.016, 0.42, 1.0, 16},
		{Subcategory: 2}: {0.022, 0.044, 0.13, 0.088, 0.20, 0.15, 0.20, 0.24, 0.29, 0.24, 0.018, 0.15, 0.33, 2.6},
		{Subcategory: 3}: {0.010, 0.020, 0.080, 0.050, 0.11, 0.090, 0.12, 0.15, 0.18, 0.16, 0.009, 0.10, 0.21, 2.3},
		{Subcategory: 4}: {3.9, 7.8, 12, 12, 16, 16, 16, 19, 23, 19, 2.7, 16, 23, 100},
	},
	quality: map[Key][]float64{
		{Subcategory: 1}: {1.0, 3.4},
		{Subcategory: 2}: {1.0, 2.9},
		{Subcategory: 3}: {1.0, 1.0},
		{Subcategory: 4}: {1.0, 1.0},
	},
}
