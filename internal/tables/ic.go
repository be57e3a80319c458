package tables

// Integrated circuit technology variants: 1 bipolar, 2 MOS. GaAs devices
// use 1 for MMIC and 2 for digital.
var icCount = &countTable{
	name: "integrated circuit",
	rows: map[Key]Row{
		{1, 0, 1}: {0.0095, 0.024, 0.039, 0.034, 0.049, 0.057, 0.062, 0.12, 0.13, 0.076, 0.0095, 0.044, 0.096, 1.1},
		{1, 0, 2}: {0.0170, 0.041, 0.065, 0.054, 0.078, 0.100, 0.110, 0.22, 0.24, 0.130, 0.0170, 0.072, 0.150, 1.4},
		{1, 0, 3}: {0.0330, 0.074, 0.110, 0.092, 0.130, 0.190, 0.190, 0.41, 0.44, 0.220, 0.0330, 0.120, 0.260, 2.0},
		{1, 0, 4}: {0.0500, 0.120, 0.180, 0.150, 0.210, 0.300, 0.300, 0.63, 0.67, 0.350, 0.0500, 0.190, 0.410, 3.4},

		{2, 1, 1}: {0.0036, 0.012, 0.024, 0.024, 0.035, 0.025, 0.030, 0.032, 0.049, 0.047, 0.0036, 0.030, 0.069, 1.20},
		{2, 1, 2}: {0.0060, 0.020, 0.038, 0.037, 0.055, 0.039, 0.048, 0.051, 0.077, 0.074, 0.0060, 0.046, 0.110, 1.90},
		{2, 1, 3}: {0.0110, 0.035, 0.066, 0.065, 0.097, 0.070, 0.085, 0.091, 0.140, 0.130, 0.0110, 0.082, 0.190, 3.30},
		{2, 1, 4}: {0.0330, 0.120, 0.220, 0.220, 0.330, 0.230, 0.280, 0.300, 0.460, 0.440, 0.0330, 0.280, 0.650, 12.0},
		{2, 1, 5}: {0.0520, 0.170, 0.330, 0.330, 0.480, 0.340, 0.420, 0.450, 0.680, 0.650, 0.0520, 0.410, 0.950, 17.0},
		{2, 1, 6}: {0.0750, 0.230, 0.440, 0.430, 0.630, 0.460, 0.560, 0.610, 0.900, 0.850, 0.0750, 0.530, 1.200, 21.0},
		{2, 2, 1}: {0.0057, 0.015, 0.027, 0.027, 0.039, 0.029, 0.035, 0.039, 0.056, 0.052, 0.0057, 0.033, 0.074, 1.20},
		{2, 2, 2}: {0.0100, 0.028, 0.045, 0.043, 0.062, 0.049, 0.057, 0.068, 0.092, 0.083, 0.0100, 0.053, 0.120, 1.90},
		{2, 2, 3}: {0.0190, 0.047, 0.080, 0.077, 0.110, 0.088, 0.100, 0.120, 0.170, 0.150, 0.0190, 0.095, 0.210, 3.30},
		{2, 2, 4}: {0.0490, 0.140, 0.250, 0.240, 0.360, 0.270, 0.320, 0.360, 0.510, 0.480, 0.0490, 0.300, 0.690, 12.0},
		{2, 2, 5}: {0.0840, 0.220, 0.390, 0.370, 0.540, 0.420, 0.490, 0.560, 0.790, 0.720, 0.0840, 0.460, 1.000, 17.0},
		{2, 2, 6}: {0.1300, 0.310, 0.530, 0.510, 0.730, 0.590, 0.690, 0.820, 1.100, 0.980, 0.1300, 0.830, 1.400, 21.0},

		{3, 1, 1}: {0.0061, 0.016, 0.029, 0.027, 0.040, 0.032, 0.037, 0.044, 0.061, 0.054, 0.0061, 0.034, 0.076, 1.2},
		{3, 1, 2}: {0.0110, 0.028, 0.048, 0.046, 0.065, 0.054, 0.063, 0.077, 0.100, 0.089, 0.0110, 0.057, 0.120, 1.9},
		{3, 1, 3}: {0.0220, 0.052, 0.087, 0.082, 0.120, 0.099, 0.110, 0.140, 0.190, 0.160, 0.0220, 0.100, 0.220, 3.3},
		{3, 2, 1}: {0.0046, 0.018, 0.035, 0.035, 0.052, 0.035, 0.044, 0.044, 0.070, 0.070, 0.0046, 0.044, 0.100, 1.9},
		{3, 2, 2}: {0.0056, 0.021, 0.042, 0.042, 0.062, 0.042, 0.052, 0.053, 0.084, 0.083, 0.0056, 0.052, 0.120, 2.3},
		{3, 2, 3}: {0.0061, 0.022, 0.043, 0.042, 0.063, 0.043, 0.054, 0.055, 0.086, 0.084, 0.0081, 0.053, 0.130, 2.3},
		{3, 2, 4}: {0.0095, 0.033, 0.064, 0.063, 0.094, 0.065, 0.080, 0.083, 0.130, 0.130, 0.0095, 0.079, 0.190, 3.3},

		{4, 1, 1}: {0.028, 0.061, 0.098, 0.091, 0.13, 0.12, 0.13, 0.17, 0.22, 0.18, 0.028, 0.11, 0.24, 3.30},
		{4, 1, 2}: {0.052, 0.110, 0.180, 0.160, 0.23, 0.21, 0.24, 0.32, 0.39, 0.31, 0.052, 0.20, 0.41, 5.60},
		{4, 1, 3}: {0.110, 0.230, 0.360, 0.330, 0.47, 0.44, 0.49, 0.65, 0.81, 0.65, 0.110, 0.42, 0.86, 12.0},
		{4, 2, 1}: {0.048, 0.089, 0.130, 0.120, 0.16, 0.16, 0.17, 0.24, 0.28, 0.22, 0.048, 0.15, 0.28, 3.40},
		{4, 2, 2}: {0.093, 0.170, 0.240, 0.220, 0.29, 0.30, 0.32, 0.45, 0.52, 0.40, 0.093, 0.27, 0.50, 5.60},
		{4, 2, 3}: {0.190, 0.340, 0.490, 0.450, 0.60, 0.61, 0.66, 0.90, 1.10, 0.82, 0.190, 0.54, 1.00, 12.0},

		{5, 1, 1}: {0.010, 0.028, 0.050, 0.046, 0.067, 0.062, 0.070, 0.10, 0.13, 0.096, 0.010, 0.058, 0.13, 1.9},
		{5, 1, 2}: {0.017, 0.043, 0.071, 0.063, 0.091, 0.095, 0.110, 0.18, 0.21, 0.140, 0.017, 0.081, 0.18, 2.3},
		{5, 1, 3}: {0.028, 0.065, 0.100, 0.085, 0.120, 0.150, 0.180, 0.30, 0.33, 0.190, 0.028, 0.110, 0.23, 2.3},
		{5, 1, 4}: {0.053, 0.120, 0.180, 0.150, 0.210, 0.270, 0.290, 0.56, 0.61, 0.330, 0.053, 0.190, 0.39, 3.4},
		{5, 2, 1}: {0.0047, 0.018, 0.036, 0.035, 0.053, 0.037, 0.045, 0.048, 0.074, 0.071, 0.0047, 0.044, 0.11, 1.9},
		{5, 2, 2}: {0.0059, 0.022, 0.043, 0.042, 0.063, 0.045, 0.055, 0.060, 0.090, 0.086, 0.0059, 0.053, 0.13, 2.3},
		{5, 2, 3}: {0.0067, 0.023, 0.045, 0.044, 0.066, 0.048, 0.059, 0.068, 0.099, 0.089, 0.0067, 0.055, 0.13, 2.3},
		{5, 2, 4}: {0.0110, 0.036, 0.068, 0.066, 0.098, 0.075, 0.090, 0.110, 0.150, 0.140, 0.0110, 0.083, 0.20, 3.3},

		{6, 2, 1}: {0.0049, 0.018, 0.036, 0.036, 0.053, 0.037, 0.046, 0.049, 0.075, 0.072, 0.0048, 0.045, 0.11, 1.9},
		{6, 2, 2}: {0.0061, 0.022, 0.044, 0.043, 0.064, 0.046, 0.056, 0.062, 0.093, 0.087, 0.0062, 0.054, 0.13, 2.3},
		{6, 2, 3}: {0.0072, 0.024, 0.048, 0.045, 0.067, 0.051, 0.061, 0.073, 0.100, 0.092, 0.0072, 0.057, 0.13, 2.3},
		{6, 2, 4}: {0.0120, 0.038, 0.071, 0.068, 0.100, 0.080, 0.095, 0.120, 0.180, 0.140, 0.0120, 0.086, 0.20, 3.3},

		{7, 2, 1}: {0.0040, 0.014, 0.027, 0.027, 0.040, 0.029, 0.035, 0.040, 0.059, 0.055, 0.0040, 0.034, 0.080, 1.4},
		{7, 2, 2}: {0.0055, 0.019, 0.039, 0.034, 0.051, 0.039, 0.047, 0.056, 0.079, 0.070, 0.0055, 0.043, 0.100, 1.7},
		{7, 2, 3}: {0.0074, 0.023, 0.043, 0.040, 0.060, 0.049, 0.058, 0.076, 0.100, 0.084, 0.0074, 0.051, 0.120, 1.9},
		{7, 2, 4}: {0.0110, 0.032, 0.057, 0.053, 0.077, 0.070, 0.080, 0.120, 0.150, 0.110, 0.0110, 0.067, 0.150, 2.3},

		{8, 1, 1}: {0.0075, 0.023, 0.043, 0.041, 0.060, 0.050, 0.058, 0.077, 0.10, 0.084, 0.0075, 0.052, 0.12, 1.9},
		{8, 1, 2}: {0.0120, 0.033, 0.058, 0.054, 0.079, 0.072, 0.083, 0.120, 0.15, 0.110, 0.0120, 0.069, 0.15, 2.3},
		{8, 1, 3}: {0.0180, 0.045, 0.074, 0.065, 0.095, 0.100, 0.110, 0.190, 0.22, 0.140, 0.0180, 0.084, 0.18, 2.3},
		{8, 1, 4}: {0.0330, 0.079, 0.130, 0.110, 0.160, 0.180, 0.200, 0.350, 0.39, 0.240, 0.0330, 0.140, 0.30, 3.4},
		{8, 2, 1}: {0.0079, 0.022, 0.038, 0.034, 0.050, 0.048, 0.054, 0.083, 0.10, 0.073, 0.0079, 0.044, 0.098, 1.4},
		{8, 2, 2}: {0.0140, 0.034, 0.057, 0.050, 0.073, 0.077, 0.085, 0.140, 0.17, 0.110, 0.0140, 0.065, 0.140, 1.8},
		{8, 2, 3}: {0.0230, 0.053, 0.084, 0.071, 0.100, 0.120, 0.130, 0.250, 0.27, 0.160, 0.0230, 0.092, 0.190, 1.9},
		{8, 2, 4}: {0.0430, 0.092, 0.140, 0.110, 0.160, 0.220, 0.230, 0.460, 0.49, 0.260, 0.0430, 0.150, 0.300, 2.3},

		{9, 1, 1}: {0.019, 0.034, 0.046, 0.039, 0.052, 0.065, 0.068, 0.11, 0.12, 0.076, 0.019, 0.049, 0.086, 0.61},
		{9, 1, 2}: {0.025, 0.047, 0.067, 0.058, 0.079, 0.091, 0.097, 0.15, 0.17, 0.11, 0.025, 0.073, 0.14, 1.3},
		{9, 2, 1}: {0.0085, 0.030, 0.057, 0.057, 0.084, 0.060, 0.073, 0.080, 0.12, 0.11, 0.0085, 0.071, 0.17, 3.0},
		{9, 2, 2}: {0.0140, 0.053, 0.100, 0.100, 0.150, 0.110, 0.130, 0.140, 0.22, 0.21, 0.0140, 0.130, 0.31, 5.5},
	},
	quality: map[Key][]float64{
		{}: {0.25, 1.0, 2.0},
	},
}
