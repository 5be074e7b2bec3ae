package caldata

// Canonical breakpoint vectors and table values for the fuel-system
// calibration. The estimator tables were sampled from the identified plant
// model on the irregular working-range grids below; saturated regions are
// clipped to the valid sensor envelope.

var speedVect = []float64{
	50.0, 75.0, 100.0, 150.0, 200.0, 250.0, 300.0,
	350.0, 400.0, 450.0, 500.0, 550.0, 600.0, 650.0,
}

var throtVect = []float64{
	3.0, 5.0, 8.0, 12.0, 18.0, 25.0, 35.0, 45.0, 60.0, 75.0, 90.0,
}

var pressVect = []float64{
	0.05, 0.1, 0.15, 0.2, 0.25, 0.3, 0.35, 0.4, 0.45, 0.5,
	0.55, 0.6, 0.65, 0.7, 0.75, 0.8, 0.85, 0.9, 0.95,
}

var egoVect = []float64{
	0.0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0, 1.1, 1.2,
}

var rampRateKiX = []float64{
	100.0, 200.0, 300.0, 400.0, 500.0,
}

var rampRateKiY = []float64{
	0.1, 0.25, 0.4, 0.55, 0.7, 0.85, 1.0,
}

// pressEst maps (throttle, speed) to estimated manifold pressure.
var pressEst = [][]float64{
	{0.1886, 0.1865, 0.1841, 0.179, 0.1735, 0.1679, 0.1622, 0.1563, 0.1503, 0.1442, 0.1381, 0.1319, 0.1256, 0.1193},
	{0.2336, 0.2308, 0.2276, 0.2208, 0.2136, 0.2062, 0.1985, 0.1908, 0.1829, 0.1748, 0.1667, 0.1585, 0.1502, 0.1418},
	{0.2877, 0.2841, 0.28, 0.2712, 0.2619, 0.2522, 0.2424, 0.2323, 0.222, 0.2116, 0.2011, 0.1905, 0.1797, 0.1689},
	{0.3471, 0.3426, 0.3375, 0.3264, 0.3148, 0.3028, 0.2904, 0.2778, 0.265, 0.252, 0.2389, 0.2256, 0.2121, 0.1986},
	{0.4214, 0.4157, 0.4093, 0.3955, 0.381, 0.3659, 0.3505, 0.3347, 0.3187, 0.3025, 0.2861, 0.2694, 0.2526, 0.2357},
	{0.4949, 0.4882, 0.4805, 0.4639, 0.4465, 0.4285, 0.41, 0.3911, 0.372, 0.3525, 0.3328, 0.3129, 0.2928, 0.2725},
	{0.5854, 0.5772, 0.568, 0.5481, 0.5271, 0.5054, 0.4832, 0.4605, 0.4374, 0.414, 0.3903, 0.3663, 0.3421, 0.3177},
	{0.6647, 0.6554, 0.6447, 0.6219, 0.5978, 0.5729, 0.5474, 0.5213, 0.4948, 0.468, 0.4407, 0.4132, 0.3854, 0.3574},
	{0.7701, 0.7592, 0.7467, 0.7199, 0.6917, 0.6626, 0.6327, 0.6021, 0.5711, 0.5396, 0.5077, 0.4755, 0.4429, 0.41},
	{0.8641, 0.8518, 0.8377, 0.8074, 0.7755, 0.7426, 0.7087, 0.6742, 0.6391, 0.6035, 0.5675, 0.531, 0.4942, 0.4571},
	{0.95, 0.9364, 0.9208, 0.8873, 0.8521, 0.8156, 0.7782, 0.7401, 0.7013, 0.6619, 0.6221, 0.5818, 0.5411, 0.5},
}

// throtEst maps (pressure, speed) to estimated throttle angle.
var throtEst = [][]float64{
	{3.0, 3.0, 3.0, 3.0, 3.0, 3.0, 3.0, 3.0, 3.0, 3.0, 3.0, 3.0, 3.0, 3.0},
	{3.0, 3.0, 3.0, 3.0, 3.0, 3.0, 3.0, 3.0, 3.0, 3.0, 3.0, 3.0, 3.0, 3.0},
	{3.0, 3.0, 3.0, 3.0, 3.0, 3.0, 3.0, 3.0, 3.0, 3.34, 3.78, 4.31, 4.98, 5.84},
	{3.46, 3.56, 3.68, 3.95, 4.27, 4.65, 5.09, 5.61, 6.24, 6.98, 7.89, 9.01, 10.42, 12.21},
	{5.84, 6.01, 6.2, 6.66, 7.2, 7.84, 8.59, 9.47, 10.52, 11.78, 13.32, 15.21, 17.58, 20.6},
	{8.77, 9.01, 9.31, 10.0, 10.81, 11.76, 12.88, 14.21, 15.78, 17.68, 19.98, 22.82, 26.37, 30.91},
	{12.21, 12.55, 12.97, 13.92, 15.06, 16.39, 17.95, 19.79, 21.99, 24.63, 27.83, 31.79, 36.74, 43.06},
	{16.16, 16.62, 17.16, 18.43, 19.93, 21.69, 23.75, 26.19, 29.1, 32.59, 36.84, 42.07, 48.62, 56.99},
	{20.6, 21.18, 21.88, 23.49, 25.4, 27.64, 30.28, 33.39, 37.1, 41.55, 46.96, 53.63, 61.98, 72.65},
	{25.52, 26.24, 27.1, 29.1, 31.47, 34.25, 37.51, 41.37, 45.95, 51.47, 58.17, 66.43, 76.78, 90.0},
	{30.91, 31.78, 32.82, 35.25, 38.11, 41.48, 45.43, 50.1, 55.66, 62.34, 70.46, 80.46, 90.0, 90.0},
	{36.76, 37.79, 39.04, 41.92, 45.33, 49.33, 54.03, 59.58, 66.19, 74.13, 83.79, 90.0, 90.0, 90.0},
	{43.06, 44.27, 45.73, 49.1, 53.09, 57.78, 63.29, 69.79, 77.53, 86.84, 90.0, 90.0, 90.0, 90.0},
	{49.81, 51.21, 52.89, 56.79, 61.41, 66.83, 73.2, 80.73, 89.68, 90.0, 90.0, 90.0, 90.0, 90.0},
	{56.99, 58.6, 60.52, 64.99, 70.27, 76.47, 83.76, 90.0, 90.0, 90.0, 90.0, 90.0, 90.0, 90.0},
	{64.61, 66.43, 68.61, 73.67, 79.66, 86.69, 90.0, 90.0, 90.0, 90.0, 90.0, 90.0, 90.0, 90.0},
	{72.65, 74.7, 77.15, 82.84, 89.58, 90.0, 90.0, 90.0, 90.0, 90.0, 90.0, 90.0, 90.0, 90.0},
	{81.12, 83.4, 86.14, 90.0, 90.0, 90.0, 90.0, 90.0, 90.0, 90.0, 90.0, 90.0, 90.0, 90.0},
	{90.0, 90.0, 90.0, 90.0, 90.0, 90.0, 90.0, 90.0, 90.0, 90.0, 90.0, 90.0, 90.0, 90.0},
}

// speedEst maps (pressure, throttle) to estimated engine speed.
var speedEst = [][]float64{
	{650.0, 650.0, 650.0, 650.0, 650.0, 650.0, 650.0, 650.0, 650.0, 650.0, 650.0},
	{650.0, 650.0, 650.0, 650.0, 650.0, 650.0, 650.0, 650.0, 650.0, 650.0, 650.0},
	{402.6, 601.0, 650.0, 650.0, 650.0, 650.0, 650.0, 650.0, 650.0, 650.0, 650.0},
	{50.0, 290.6, 505.3, 644.7, 650.0, 650.0, 650.0, 650.0, 650.0, 650.0, 650.0},
	{50.0, 50.0, 261.5, 457.7, 607.8, 650.0, 650.0, 650.0, 650.0, 650.0, 650.0},
	{50.0, 50.0, 50.0, 261.3, 457.6, 582.1, 650.0, 650.0, 650.0, 650.0, 650.0},
	{50.0, 50.0, 50.0, 50.0, 301.6, 456.4, 583.8, 650.0, 650.0, 650.0, 650.0},
	{50.0, 50.0, 50.0, 50.0, 134.1, 326.6, 479.6, 573.8, 650.0, 650.0, 650.0},
	{50.0, 50.0, 50.0, 50.0, 50.0, 190.1, 372.8, 483.0, 589.2, 650.0, 650.0},
	{50.0, 50.0, 50.0, 50.0, 50.0, 50.0, 262.3, 390.3, 512.0, 592.2, 650.0},
	{50.0, 50.0, 50.0, 50.0, 50.0, 50.0, 145.3, 294.9, 433.6, 524.1, 589.1},
	{50.0, 50.0, 50.0, 50.0, 50.0, 50.0, 50.0, 195.6, 353.5, 454.9, 527.5},
	{50.0, 50.0, 50.0, 50.0, 50.0, 50.0, 50.0, 87.9, 271.1, 384.6, 465.0},
	{50.0, 50.0, 50.0, 50.0, 50.0, 50.0, 50.0, 50.0, 185.6, 312.7, 401.6},
	{50.0, 50.0, 50.0, 50.0, 50.0, 50.0, 50.0, 50.0, 93.5, 238.8, 337.1},
	{50.0, 50.0, 50.0, 50.0, 50.0, 50.0, 50.0, 50.0, 50.0, 161.8, 271.0},
	{50.0, 50.0, 50.0, 50.0, 50.0, 50.0, 50.0, 50.0, 50.0, 78.3, 202.9},
	{50.0, 50.0, 50.0, 50.0, 50.0, 50.0, 50.0, 50.0, 50.0, 50.0, 131.4},
	{50.0, 50.0, 50.0, 50.0, 50.0, 50.0, 50.0, 50.0, 50.0, 50.0, 50.0},
}

// throtArea is the normalized effective throttle flow area.
var throtArea = []float64{
	0.154, 0.204, 0.2642, 0.3302, 0.4126, 0.4943, 0.5948, 0.683,
	0.8001, 0.9046, 1.0,
}
