package hankel

// gs140Weights are the J1 weights of the Guptasarma and Singh (1997) 140-point filter.
// Abscissa n is 10^(gs140A + n*gs140S).
var gs140Weights = [140]float64{
	-6.76671159511e-14, 3.39808396836e-13, -7.43411889153e-13, 8.93613024469e-13,
	-5.47341591896e-13, -5.84920181906e-14, 5.20780672883e-13, -6.92656254606e-13,
	6.88908045074e-13, -6.39910528298e-13, 5.82098912530e-13, -4.84912700478e-13,
	3.54684337858e-13, -2.10855291368e-13, 1.00452749275e-13, 5.58449957721e-15,
	-5.67206735175e-14, 1.09107856853e-13, -6.04067500756e-14, 8.84512134731e-14,
	2.22321981827e-14, 8.38072239207e-14, 1.23647835900e-13, 1.44351787234e-13,
	2.94276480713e-13, 3.39965995918e-13, 6.17024672340e-13, 8.25310217692e-13,
	1.32560792613e-12, 1.90949961267e-12, 2.93458179767e-12, 4.33454210095e-12,
	6.55863288798e-12, 9.78324910827e-12, 1.47126365223e-11, 2.20240108708e-11,
	3.30577485691e-11, 4.95377381480e-11, 7.43047574433e-11, 1.11400535181e-10,
	1.67052734516e-10, 2.50470107577e-10, 3.75597211630e-10, 5.63165204681e-10,
	8.44458166896e-10, 1.26621795331e-09, 1.89866561359e-09, 2.84693620927e-09,
	4.26886170263e-09, 6.40104325574e-09, 9.59798498616e-09, 1.43918931885e-08,
	2.15798696769e-08, 3.23584600810e-08, 4.85195105813e-08, 7.27538583183e-08,
	1.09090191748e-07, 1.63577866557e-07, 2.45275193920e-07, 3.67784458730e-07,
	5.51470341585e-07, 8.26916206192e-07, 1.23991037294e-06, 1.85921554669e-06,
	2.78777669034e-06, 4.18019870272e-06, 6.26794044911e-06, 9.39858833064e-06,
	1.40925408889e-05, 2.11312291505e-05, 3.16846342900e-05, 4.75093313246e-05,
	7.12354794719e-05, 1.06810848460e-04, 1.60146590551e-04, 2.40110903628e-04,
	3.59981158972e-04, 5.39658308918e-04, 8.08925141201e-04, 1.21234066243e-03,
	1.81650387595e-03, 2.72068483151e-03, 4.07274689463e-03, 6.09135552241e-03,
	9.09940027636e-03, 1.35660714813e-02, 2.01692550906e-02, 2.98534800308e-02,
	4.39060697220e-02, 6.39211368217e-02, 9.16763946228e-02, 1.28368795114e-01,
	1.73241920046e-01, 2.19830379079e-01, 2.51193131178e-01, 2.32380049895e-01,
	1.17121080205e-01, -1.17252913088e-01, -3.52148528535e-01, -2.71162871370e-01,
	2.91134747110e-01, 3.17192840623e-01, -4.93075681595e-01, 3.11223091821e-01,
	-1.36044122543e-01, 5.12141261934e-02, -1.90806300761e-02, 7.57044398633e-03,
	-3.25432753751e-03, 1.49774676371e-03, -7.24569558272e-04, 3.62792644965e-04,
	-1.85907973641e-04, 9.67201396593e-05, -5.07744171678e-05, 2.67510121456e-05,
	-1.40667136728e-05, 7.33363699547e-06, -3.75638767050e-06, 1.86344211280e-06,
	-8.71623576811e-07, 3.61028200288e-07, -1.05847108097e-07, -1.51569361490e-08,
	6.67633241420e-08, -8.33741579804e-08, 8.31065906136e-08, -7.53457009758e-08,
	6.48057680299e-08, -5.37558016587e-08, 4.32436265303e-08, -3.37262648712e-08,
	2.53558687098e-08, -1.81287021528e-08, 1.20228328586e-08, -7.10898040664e-09,
	3.53667004588e-09, -1.36030600198e-09, 3.52544249042e-10, -4.53719284366e-11,
}
