package ratings

import "math"

const (
	tsMu       = 25.0
	tsSigma    = tsMu / 3
	tsBeta     = tsSigma / 2
	tsTau      = tsSigma / 100
	tsDrawProb = 0.10
)

type tsPlayer struct {
	mu    float64
	sigma float64
	games int
}

// TrueSkill is the two-player factor-graph update from Herbrich et al.,
// with additive dynamics noise per game and a fixed draw probability.
// Reported ratings are the conservative estimate mu - 3*sigma.
type TrueSkill struct {
	players map[string]*tsPlayer
	epsilon float64 // draw margin in skill units
}

func NewTrueSkill() *TrueSkill {
	return &TrueSkill{
		players: make(map[string]*tsPlayer),
		epsilon: invNormCdf((tsDrawProb+1)/2) * math.Sqrt2 * tsBeta,
	}
}

func (*TrueSkill) Name() string { return "trueskill" }

func (t *TrueSkill) player(name string) *tsPlayer {
	p, ok := t.players[name]
	if !ok {
		p = &tsPlayer{mu: tsMu, sigma: tsSigma}
		t.players[name] = p
	}
	return p
}

func (t *TrueSkill) Record(a, b string, outcome Outcome) {
	pa, pb := t.player(a), t.player(b)
	if outcome == Loss {
		pa, pb = pb, pa
	}

	// Dynamics noise keeps long-running ratings from freezing.
	va := pa.sigma*pa.sigma + tsTau*tsTau
	vb := pb.sigma*pb.sigma + tsTau*tsTau
	c2 := 2*tsBeta*tsBeta + va + vb
	c := math.Sqrt(c2)
	d := (pa.mu - pb.mu) / c
	eps := t.epsilon / c

	var v, w float64
	if outcome == Draw {
		v, w = vwDraw(d, eps)
	} else {
		v, w = vwWin(d, eps)
	}

	pa.mu += va / c * v
	pb.mu -= vb / c * v
	pa.sigma = math.Sqrt(va * (1 - va/c2*w))
	pb.sigma = math.Sqrt(vb * (1 - vb/c2*w))
	pa.games++
	pb.games++
}

// vwWin are the truncated-gaussian correction terms for a decisive game,
// seen from the winner.
func vwWin(d, eps float64) (v, w float64) {
	denom := normCdf(d - eps)
	if denom < 1e-12 {
		v = eps - d
		return v, v * (v + d - eps)
	}
	v = normPdf(d-eps) / denom
	return v, v * (v + d - eps)
}

// vwDraw are the correction terms for a draw; d is signed, so the update
// pulls both ratings toward each other.
func vwDraw(d, eps float64) (v, w float64) {
	denom := normCdf(eps-d) - normCdf(-eps-d)
	if denom < 1e-12 {
		if d < 0 {
			return -d - eps, 1
		}
		return -d + eps, 1
	}
	v = (normPdf(-eps-d) - normPdf(eps-d)) / denom
	w = v*v + ((eps-d)*normPdf(eps-d)-(-eps-d)*normPdf(-eps-d))/denom
	return v, w
}

func normPdf(x float64) float64 {
	return math.Exp(-x*x/2) / math.Sqrt(2*math.Pi)
}

func normCdf(x float64) float64 {
	return 0.5 * math.Erfc(-x/math.Sqrt2)
}

// invNormCdf is Acklam's rational approximation to the standard normal
// quantile function, good to ~1e-9 over (0,1).
func invNormCdf(p float64) float64 {
	a := [6]float64{-3.969683028665376e+01, 2.209460984245205e+02,
		-2.759285104469687e+02, 1.383577518672690e+02,
		-3.066479806614716e+01, 2.506628277459239e+00}
	b := [5]float64{-5.447609879822406e+01, 1.615858368580409e+02,
		-1.556989798598866e+02, 6.680131188771972e+01,
		-1.328068155288572e+01}
	c := [6]float64{-7.784894002430293e-03, -3.223964580411365e-01,
		-2.400758277161838e+00, -2.549732539343734e+00,
		4.374664141464968e+00, 2.938163982698783e+00}
	e := [4]float64{7.784695709041462e-03, 3.224671290700398e-01,
		2.445134137142996e+00, 3.754408661907416e+00}

	const pLow = 0.02425
	switch {
	case p < pLow:
		q := math.Sqrt(-2 * math.Log(p))
		return (((((c[0]*q+c[1])*q+c[2])*q+c[3])*q+c[4])*q + c[5]) /
			((((e[0]*q+e[1])*q+e[2])*q+e[3])*q + 1)
	case p > 1-pLow:
		q := math.Sqrt(-2 * math.Log(1-p))
		return -(((((c[0]*q+c[1])*q+c[2])*q+c[3])*q+c[4])*q + c[5]) /
			((((e[0]*q+e[1])*q+e[2])*q+e[3])*q + 1)
	default:
		q := p - 0.5
		r := q * q
		return (((((a[0]*r+a[1])*r+a[2])*r+a[3])*r+a[4])*r + a[5]) * q /
			(((((b[0]*r+b[1])*r+b[2])*r+b[3])*r+b[4])*r + 1)
	}
}

func (t *TrueSkill) Table() []Standing {
	var table []Standing
	for name, p := range t.players {
		table = append(table, Standing{
			Player: name,
			Rating: p.mu - 3*p.sigma,
			Games:  p.games,
		})
	}
	return sortStandings(table)
}
