package hankel

// dlf201Table holds {base, J0 weight, J1 weight} rows of the in-house
// 201-point filter, base[k] = exp(-21.5 + 0.16k). The weights were fitted to
// the transform pairs in TestTransformPairs and are not Key (2012).
var dlf201Table = [201][3]float64{
	{4.5990553786523166e-10, 1.7444594185673321e-12, 1.8268205731544638e-20},
	{5.397041483141851e-10, 2.3998726583358265e-12, 3.4613755971555277e-20},
	{6.333486851660726e-10, 3.300864866559862e-12, 6.548342320785408e-20},
	{7.432415671707557e-10, 4.5392148452002106e-12, 1.2401784270101296e-19},
	{8.722020588478716e-10, 6.240535399275246e-12, 2.3491921021993206e-19},
	{1.0235385977594162e-09, 8.577042315943565e-12, 4.444418015476626e-19},
	{1.2011336713503887e-09, 1.1784247077031924e-11, 8.407607308208409e-19},
	{1.4095434208439856e-09, 1.6184745111698542e-11, 1.5895479680882527e-18},
	{1.6541145274954014e-09, 2.2217216270278842e-11, 3.003310801973943e-18},
	{1.9411213798813355e-09, 3.0481628329396946e-11, 5.672106754239103e-18},
	{2.277927041205371e-09, 4.179310588851081e-11, 1.0702332610113095e-17},
	{2.6731721461807124e-09, 5.725701824719061e-11, 2.0178005729811025e-17},
	{3.136996573575575e-09, 7.837434663634605e-11, 3.800691643310546e-17},
	{3.6812995813549846e-09, 1.0716528490643043e-10, 7.149768298018137e-17},
	{4.32004507809769e-09, 1.4635112030871832e-10, 1.3431731926920026e-16},
	{5.069619862322287e-09, 1.995739747933847e-10, 2.518976617723605e-16},
	{5.949254020231208e-09, 2.716850034130515e-10, 4.714925355239359e-16},
	{6.981514267033055e-09, 3.6910496942491577e-10, 8.804611321545774e-16},
	{8.19288288834771e-09, 5.002675216115079e-10, 1.6397012566408977e-15},
	{9.614437134238822e-09, 6.76145021870362e-10, 3.0437230950053677e-15},
	{1.1282646495496604e-08, 9.108475396991744e-10, 5.62832084028873e-15},
	{1.3240308316022919e-08, 1.2222580152136085e-09, 1.0360460957178634e-14},
	{1.5537645744136165e-08, 1.6326486619835243e-09, 1.8968506142210247e-14},
	{1.823359619036343e-08, 2.1690686309970787e-09, 3.450539999435267e-14},
	{2.1397323346666342e-08, 2.8633819652168314e-09, 6.228734046642956e-14},
	{2.510999155743982e-08, 3.751496314276983e-09, 1.1140476491887115e-13},
	{2.9466848063168206e-08, 4.871295459389384e-09, 1.9704988390063117e-13},
	{3.457966653599186e-08, 6.2586753383589465e-09, 3.438688207709947e-13},
	{4.0579614595258174e-08, 7.940712088615143e-09, 5.902737305202488e-13},
	{4.7620618868193396e-08, 9.9255627923031e-09, 9.928512432549288e-13},
	{5.588331392518268e-08, 1.2188655384856318e-08, 1.6280629046185132e-12},
	{6.557967639824989e-08, 1.4656760525209378e-08, 2.584558180560014e-12},
	{7.69584631694713e-08, 1.719318973136793e-08, 3.932686727936413e-12},
	{9.031159314419742e-08, 1.9593078314272825e-08, 5.6483457286874615e-12},
	{1.0598163633130514e-07, 2.1602220076043032e-08, 7.460338853823514e-12},
	{1.243706023602872e-07, 2.2979470854431973e-08, 8.598125020198177e-12},
	{1.4595025390159645e-07, 2.3623938952733607e-08, 7.474161771216712e-12},
	{1.7127420957753834e-07, 2.3773544779429718e-08, 1.5002292571567333e-12},
	{2.009921468597709e-07, 2.4241581968931618e-08, -1.243269775256637e-11},
	{2.3586646932392362e-07, 2.6574161600160882e-08, -3.5849175306962705e-11},
	{2.767918658540807e-07, 3.290299264037255e-08, -6.394397117291219e-11},
	{3.248182635818706e-07, 4.520251692307214e-08, -7.88147707667573e-11},
	{3.8117776341000774e-07, 6.381390076447958e-08, -4.661355526945759e-11},
	{4.4731624914198846e-07, 8.571190373502482e-08, 6.648897635055605e-11},
	{5.249304811394046e-07, 1.0407621180583568e-07, 2.4196247658919e-10},
	{6.160116261320527e-07, 1.1155468170538446e-07, 3.3497168974113575e-10},
	{7.228963399233066e-07, 1.0810015703943485e-07, 8.88782455158578e-11},
	{8.483267135001914e-07, 1.0838125317466121e-07, -5.68220957524925e-10},
	{9.955206204452296e-07, 1.3630633180432945e-07, -9.987133195783766e-10},
	{1.168254270388989e-06, 1.9851521844070515e-07, -1.1818868136470513e-11},
	{1.3709590863840845e-06, 2.591494659673969e-07, 2.060032719713619e-09},
	{1.6088353915567235e-06, 2.700223943130469e-07, 1.4651968474916169e-09},
	{1.887985821628181e-06, 2.580403060035145e-07, -3.5466493678953397e-09},
	{2.2155718859590755e-06, 3.2622716069511547e-07, -3.3922162230921358e-09},
	{2.5999976936368024e-06, 4.6797944393629135e-07, 7.484790546981165e-09},
	{3.0511255580364225e-06, 5.149025403753305e-07, 3.0986811652396864e-09},
	{3.5805290111166955e-06, 5.018671021000971e-07, -1.632510673008008e-08},
	{4.201789718446999e-06, 6.80786922299372e-07, 1.0895329057929473e-08},
	{4.930845912219163e-06, 8.633602962794423e-07, 1.5228829378091697e-08},
	{5.7864012811747176e-06, 8.479241658489056e-07, -4.1306271919342115e-08},
	{6.79040480737947e-06, 1.0888522622914656e-06, 4.361207847934182e-08},
	{7.968613859894859e-06, 1.3552940253639235e-06, -1.3164341236357284e-08},
	{9.351254991322629e-06, 1.3884106028729825e-06, -4.1558930228573276e-08},
	{1.0973799389733532e-05, 1.8238098863472328e-06, 1.0292896905213943e-07},
	{1.2877872879935594e-05, 2.070184671735284e-06, -1.534271934551786e-07},
	{1.5112323819855033e-05, 2.3347052115574673e-06, 1.8132473860983852e-07},
	{1.7734476288548362e-05, 2.9582966993620635e-06, -1.8115226668944063e-07},
	{2.0811600715958e-05, 3.2192764464510905e-06, 1.523336123915472e-07},
	{2.4422639682917656e-05, 3.967908670917848e-06, -9.57804583475025e-08},
	{2.8660233166219852e-05, 4.595473031439054e-06, 1.2797924764792755e-08},
	{3.363309518571903e-05, 5.305863179886976e-06, 9.719804162927818e-08},
	{3.9468802825543534e-05, 6.430938207330535e-06, -2.3438602329117702e-07},
	{4.631706918080762e-05, 7.2906008751500875e-06, 3.9978284841723324e-07},
	{5.4353584196157486e-05, 8.785184064708055e-06, -5.897046718008592e-07},
	{6.378452193155948e-05, 1.017282526902955e-05, 7.988603993701967e-07},
	{7.48518298877006e-05, 1.1946804966419129e-05, -1.0121441463922252e-06},
	{8.783943608684635e-05, 1.4133063294716417e-05, 1.2137056483821106e-06},
	{0.00010308053314970452, 1.639218870257067e-05, -1.3746460741552596e-06},
	{0.00012096612623880994, 1.9444646361039933e-05, 1.4727076781991531e-06},
	{0.00014195506416301115, 2.266046215685991e-05, -1.4701094706690298e-06},
	{0.00016658581098763354, 2.6655758354912776e-05, 1.3506897588291232e-06},
	{0.0001954902601469749, 3.1320543551765824e-05, -1.0767286564336876e-06},
	{0.00022940994545549213, 3.664218982335755e-05, 6.578077965072522e-07},
	{0.0002692150649056583, 4.3128115062281166e-05, -6.688682884163802e-08},
	{0.00031592680530155527, 5.05308329536322e-05, -6.3244084844995e-07},
	{0.0003707435404590882, 5.9290743021976794e-05, 1.4509736117021063e-06},
	{0.0004350715750787321, 6.966976624349778e-05, -2.241694321936055e-06},
	{0.0005105612230144218, 8.164075692785898e-05, 3.0245722286783936e-06},
	{0.0005991491455142981, 9.585242609700018e-05, -3.5584024944972728e-06},
	{0.0007031080356064829, 0.00011261200766734649, 3.965082897541436e-06},
	{0.0008251049232659046, 0.0001317846852394289, -3.9160163742944445e-06},
	{0.0009682695971614026, 0.00015524764607604776, 3.798649876866608e-06},
	{0.001136274898319767, 0.00018144281700150988, -3.138432703247879e-06},
	{0.0013334309456133604, 0.00021368306874495883, 2.7655332118674718e-06},
	{0.001564795710394168, 0.00025010512456700074, -1.7841618187354448e-06},
	{0.0018363047770289089, 0.0002939840438942893, 1.6739390412433856e-06},
	{0.002154923618297613, 0.00034468673760242106, -5.756943253459899e-07},
	{0.0025288262922292556, 0.00040466030351770635, 1.1301353813920809e-06},
	{0.002967605144780944, 0.0004747971783897092, 3.049105295895985e-07},
	{0.003482516898211663, 0.0005572046079781865, 1.2317101737868616e-06},
	{0.004086771438464067, 0.0006538833917445417, 1.1590451333330563e-06},
	{0.004795870710296421, 0.0007673304096188062, 1.966339161437671e-06},
	{0.005628006414404065, 0.0009004779921291367, 2.4379945412994823e-06},
	{0.006604526709314811, 0.0010567100255714091, 3.56753415300158e-06},
	{0.007750483891136699, 0.0012400599855961444, 4.737879724770931e-06},
	{0.009095277101695824, 0.0014552141972115757, 6.680260451343874e-06},
	{0.010673406553522934, 0.0017076958935262861, 9.052996801803965e-06},
	{0.012525358621074397, 0.0020039794432004493, 1.261194209761066e-05},
	{0.014698644504901796, 0.0023516554614477635, 1.7219158711734807e-05},
	{0.017249019115346296, 0.0027596383140063487, 2.387067666125358e-05},
	{0.020241911445804416, 0.0032383737016143223, 3.270113627976595e-05},
	{0.02375410313130504, 0.0038001206087828316, 4.522195770107363e-05},
	{0.027875698255247067, 0.004459245252770025, 6.206326569694819e-05},
	{0.032712434939019874, 0.0052325893456698835, 8.570450229243477e-05},
	{0.038388398017552144, 0.006139881375875236, 0.00011774918410841418},
	{0.045049202393557905, 0.007204215161128239, 0.00016245344778606548},
	{0.0528657287383503, 0.008452608997890606, 0.00022334405292487701},
	{0.062038507377358235, 0.009916610315753934, 0.000307938505376771},
	{0.07280286282743552, 0.011633032048943283, 0.00042352753915161304},
	{0.08543495096732115, 0.013644653147541833, 0.0005836420017516943},
	{0.10025884372280366, 0.016001139117668043, 0.0008028557444658345},
	{0.11765484302177913, 0.018759669015715255, 0.001105821753383137},
	{0.13806923731089274, 0.0219859463597603, 0.0015210448232869864},
	{0.16202575093388072, 0.025754221040260726, 0.0020937332306848813},
	{0.1901389801015205, 0.030147947027574378, 0.002878680404051769},
	{0.22313016014842982, 0.03525777215679244, 0.003958800263496348},
	{0.26184566858032604, 0.04118036491261125, 0.005437519695937634},
	{0.3072787386011313, 0.04801074849895433, 0.007465573437725587},
	{0.36059494017307847, 0.05583507467217094, 0.010233264122153089},
	{0.42316208231774904, 0.06470844176427805, 0.014008031022040705},
	{0.49658530379140986, 0.0746307625449448, 0.019124720415672078},
	{0.5827482523739902, 0.08548966879539222, 0.02603191704733173},
	{0.6838614092123565, 0.09699490764136176, 0.03526688404220107},
	{0.8025187979624794, 0.10854537120773414, 0.04748664603045587},
	{0.9417645335842499, 0.11907996599940278, 0.06337075794738666},
	{1.1051709180756493, 0.12681565731544125, 0.08353642627155344},
	{1.2969300866657738, 0.12900830358260576, 0.10818226567653638},
	{1.5219615556186363, 0.12164159549821434, 0.13659249782807723},
	{1.7860384307500767, 0.09948129020206163, 0.16609556750415902},
	{2.0959355144943688, 0.05663933458171435, 0.19072103576793603},
	{2.4596031111569547, -0.011049994325208912, 0.19944731116581554},
	{2.8863709892679545, -0.10122812773834235, 0.1756022493431871},
	{3.3871877336213307, -0.19614439185922952, 0.10001937517747782},
	{3.974901627494744, -0.25359544558214997, -0.03588881765468591},
	{4.664590270988122, -0.20822081815918958, -0.2026030482563466},
	{5.4739473917271955, -0.013932213154102585, -0.3001948327037794},
	{6.42373677142913, 0.2547304962693579, -0.18003992492015136},
	{7.538324933661919, 0.3139663157851929, 0.17449073709479856},
	{8.84630625872088, -0.07035107072119622, 0.36879519971478414},
	{10.381236562731843, -0.41318553716992606, -0.08464933692313382},
	{12.182493960703473, 0.19108591946649062, -0.4047819730285034},
	{14.296289098677603, 0.230376874193459, 0.39546258040859505},
	{16.77685067213988, -0.372203036905036, -0.1380094010200758},
	{19.687816644762407, 0.3008054701518654, -0.05098449047783179},
	{23.103866858722196, -0.18031594925167702, 0.12541081372305074},
	{27.112638920657908, 0.07803404797981245, -0.13566759737257453},
	{31.81697651466772, -0.005146502652361787, 0.11759399511549944},
	{37.33756782205369, -0.03942891832675966, -0.0852937003676175},
	{43.81604173557402, 0.05862574829074893, 0.044713854563981026},
	{51.41860130052698, -0.05762484854555127, -0.0009978173519537767},
	{60.34028759736206, 0.04371363676685699, -0.03975743347236091},
	{70.80998345427668, -0.0245459893615863, 0.07118804887556925},
	{83.0962853583439, 0.006261178096454385, -0.08815513504258525},
	{97.51439420705418, 0.007509148618802499, 0.08817331291226012},
	{114.4342016801589, -0.015592013785661723, -0.07219238761542612},
	{134.28977968493578, 0.018562912803270094, 0.04441624887809869},
	{157.5905163233673, -0.017862143805233446, -0.01120076527535479},
	{184.93418407068322, 0.01507611897972559, -0.020588923626886284},
	{217.02227542494725, -0.011512589301604217, 0.04521029086483714},
	{254.6779994585544, 0.008045449994610578, -0.059174482931921124},
	{298.86740096706, -0.0051370789559637385, 0.06162572116908392},
	{350.72414401991324, 0.002942933479449384, -0.05400642156067543},
	{411.5785957266655, -0.0014305781589002262, 0.03925831298792819},
	{482.9919563527855, 0.0004776403686925571, -0.020884918040820783},
	{566.7963113815957, 6.234592929283718e-05, 0.002148771987621067},
	{665.1416330443618, -0.00032344171603329634, 0.014444968406543024},
	{780.5509371268042, 0.0004120575819541608, -0.027353561370676318},
	{915.9850100811499, -0.0004045760707402521, 0.03595355872810155},
	{1074.9183669957724, 0.0003513398741984914, -0.04034912818780287},
	{1261.4283890983033, -0.00028280976466463914, 0.04112603598956542},
	{1480.2999275845464, 0.0002156103133367569, -0.03911804094272168},
	{1737.1480573488548, -0.0001574825599096312, 0.035220928849844686},
	{2038.5621298211859, 0.00011091650676779673, -0.030264590229263595},
	{2392.27482053738, -7.56006246861565e-05, 0.024938693367870083},
	{2807.3605083005978, 4.9953537612521105e-05, -0.01976111100980704},
	{3294.468075283846, -3.200820584094022e-05, 0.015077088425621702},
	{3866.0941004810593, 1.987268036833057e-05, -0.011078329614599888},
	{4536.903455191828, -1.1932879353019163e-05, 0.007833034339822624},
	{5324.105525307916, 6.90989129496666e-06, -0.005319802715733532},
	{6247.8957122564025, -3.843205872405862e-06, 0.0034601592133171894},
	{7331.973539156009, 2.042278719678984e-06, -0.0021462688260049747},
	{8604.150654023873, -1.0298107686556896e-06, 0.0012621498298796192},
	{10097.064328148275, 4.883872211110138e-07, -0.0006981468125264956},
	{11849.014754185622, -2.1532036068445562e-07, 0.00035943700646288816},
	{13904.947624579181, 8.689004181077279e-08, -0.0001698393637441764},
	{16317.607198015421, -3.141481364211061e-08, 7.226356592562809e-05},
	{19148.88943544531, 9.869570775906438e-09, -2.6957770220009164e-05},
	{22471.429919915303, -2.572676768229374e-09, 8.477022622077985e-06},
	{26370.467297751235, 5.15675267194194e-10, -2.1094608403082286e-06},
	{30946.030047045107, -6.882725235674969e-11, 3.696264770153635e-07},
	{36315.502674246636, 4.268472485740053e-12, -3.420126797308934e-08},
}
