package tables

var semiconductorTransistorRow = Row{0.014, 0.099, 0.16, 0.15, 0.34, 0.28, 0.62, 0.53, 1.1, 0.51, 0.0069, 0.25, 0.68, 5.3}

// Semiconductor variants are the device type within the subcategory.
var semiconductorCount = &countTable{
	name: "semiconductor",
	rows: map[Key]Row{
		{Subcategory: 1, Variant: 1}: {0.0036, 0.028, 0.049, 0.043, 0.100, 0.092, 0.210, 0.200, 0.44, 0.170, 0.0018, 0.076, 0.23, 1.50},
		{Subcategory: 1, Variant: 2}: {0.00094, 0.0075, 0.013, 0.011, 0.027, 0.024, 0.054, 0.054, 0.12, 0.045, 0.00047, 0.020, 0.06, 0.40},
		{Subcategory: 1, Variant: 3}: {0.065, 0.52, 0.89, 0.78, 1.9, 1.7, 3.7, 3.7, 8.0, 3.1, 0.032, 1.4, 4.1, 28.0},
		{Subcategory: 1, Variant: 4}: {0.0028, 0.022, 0.039, 0.034, 0.062, 0.073, 0.16, 0.16, 0.35, 0.13, 0.0014, 0.060, 0.18, 1.20},
		{Subcategory: 1, Variant: 5}: {0.0029, 0.023, 0.040, 0.035, 0.084, 0.075, 0.17, 0.17, 0.36, 0.14, 0.0015, 0.062, 0.18, 1.20},
		{Subcategory: 1, Variant: 6}: {0.0033, 0.024, 0.039, 0.035, 0.082, 0.066, 0.15, 0.13, 0.27, 0.12, 0.0016, 0.060, 0.16, 1.30},
		{Subcategory: 1, Variant: 7}: {0.0058, 0.040, 0.066, 0.060, 0.14, 0.11, 0.25, 0.22, 0.46, 0.21, 0.0028, 0.10, 0.28, 2.10},

		{Subcategory: 2, Variant: 1}: {0.86, 2.8, 8.9, 5.6, 20, 11, 14, 36, 62, 44, 0.43, 16, 67, 350},
		{Subcategory: 2, Variant: 2}: {0.31, 0.76, 2.1, 1.5, 4.6, 2.0, 2.5, 4.5, 7.6, 7.9, 0.16, 3.7, 12, 94},
		{Subcategory: 2, Variant: 3}: {0.004, 0.0096, 0.0026, 0.0019, 0.058, 0.025, 0.032, 0.057, 0.097, 0.10, 0.002, 0.048, 0.15, 1.2},
		{Subcategory: 2, Variant: 4}: {0.028, 0.068, 0.19, 0.14, 0.41, 0.18, 0.22, 0.40, 0.69, 0.71, 0.014, 0.34, 1.1, 8.5},
		{Subcategory: 2, Variant: 5}: {0.047, 0.11, 0.31, 0.23, 0.68, 0.3, 0.37, 0.67, 1.1, 1.2, 0.023, 0.56, 1.8, 14},
		{Subcategory: 2, Variant: 6}: {0.0043, 0.010, 0.029, 0.021, 0.063, 0.028, 0.034, 0.062, 0.11, 0.11, 0.0022, 0.052, 0.17, 1.3},

		{Subcategory: 3, Variant: 1}: {0.00015, 0.0011, 0.0017, 0.0017, 0.0037, 0.0030, 0.0067, 0.0060, 0.013, 0.0056, 0.000073, 0.0027, 0.0074, 0.056},
		{Subcategory: 3, Variant: 2}: {0.0057, 0.042, 0.069, 0.063, 0.15, 0.12, 0.26, 0.23, 0.50, 0.22, 0.0029, 0.11, 0.29, 1.1},

		{Subcategory: 4}:  semiconductorTransistorRow,
		{Subcategory: 5}:  {0.016, 0.12, 0.20, 0.18, 0.42, 0.35, 0.80, 0.74, 1.6, 0.66, 0.0079, 0.31, 0.88, 6.4},
		{Subcategory: 6}:  {0.094, 0.23, 0.63, 0.46, 1.4, 0.60, 0.75, 1.3, 2.3, 2.4, 0.047, 1.1, 3.6, 28},
		{Subcategory: 7}:  {0.074, 0.15, 0.37, 0.29, 0.81, 0.29, 0.37, 0.52, 0.88, 0.037, 0.33, 0.66, 1.8, 18},
		{Subcategory: 9}:  semiconductorTransistorRow,
		{Subcategory: 10}: {0.0025, 0.020, 0.034, 0.030, 0.072, 0.064, 0.14, 0.14, 0.31, 0.12, 0.0012, 0.053, 0.16, 1.1},
		{Subcategory: 12}: {0.0062, 0.016, 0.045, 0.032, 0.10, 0.046, 0.058, 0.11, 0.19, 0.18, 0.0031, 0.082, 0.28, 2.0},

		{Subcategory: 8, Variant: 1}: {0.17, 0.51, 1.5, 1.0, 3.4, 1.8, 2.3, 5.4, 9.2, 7.2, 0.083, 2.8, 11, 63},
		{Subcategory: 8, Variant: 2}: {0.42, 1.3, 3.8, 2.5, 8.5, 4.5, 5.6, 13, 23, 18, 0.21, 6.9, 27, 160},

		{Subcategory: 11, Variant: 1}: {0.011, 0.029, 0.083, 0.059, 0.18, 0.084, 0.11, 0.21, 0.35, 0.34, 0.0057, 0.15, 0.51, 3.7},
		{Subcategory: 11, Variant: 2}: {0.027, 0.070, 0.20, 0.14, 0.43, 0.20, 0.25, 0.49, 0.83, 0.80, 0.013, 0.35, 1.2, 8.7},
		{Subcategory: 11, Variant: 3}: {0.00047, 0.0012, 0.0035, 0.0025, 0.0077, 0.0035, 0.0044, 0.0086, 0.015, 0.014, 0.00024, 0.0053, 0.021, 0.15},

		{Subcategory: 13, Variant: 1}: {5.1, 16, 49, 32, 110, 58, 72, 100, 170, 230, 2.6, 87, 350, 2000},
		{Subcategory: 13, Variant: 2}: {8.9, 28, 85, 55, 190, 100, 130, 180, 300, 400, 4.5, 150, 600, 3500},
	},
	quality: map[Key][]float64{
		{}:                           {0.7, 1.0, 2.4, 5.5, 8.0},
		{Subcategory: 13}:            {1.0, 1.0, 3.3},
		{Subcategory: 2}:             {0.5, 1.0, 5.0, 25.0, 50.0},
		{Subcategory: 2, Variant: 5}: {0.5, 1.0, 1.8, 2.5},
	},
}
