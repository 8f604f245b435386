package ratings

import "math"

const (
	glickoBase     = 1500.0
	glickoRD       = 350.0
	glickoScale    = 173.7178
	glickoSigma    = 0.06
	glickoTau      = 0.5
	glickoEpsilon  = 1e-6
	glickoMaxIters = 100
)

type glickoPlayer struct {
	mu    float64 // rating on the internal scale
	phi   float64 // deviation on the internal scale
	sigma float64 // volatility
	games int
}

// Glicko2 implements Glickman's Glicko-2 with every game treated as its
// own rating period, matching how the tournament feeds results one match
// at a time.
type Glicko2 struct {
	players map[string]*glickoPlayer
}

func NewGlicko2() *Glicko2 {
	return &Glicko2{players: make(map[string]*glickoPlayer)}
}

func (*Glicko2) Name() string { return "glicko2" }

func (g *Glicko2) player(name string) *glickoPlayer {
	p, ok := g.players[name]
	if !ok {
		p = &glickoPlayer{phi: glickoRD / glickoScale, sigma: glickoSigma}
		g.players[name] = p
	}
	return p
}

func (g *Glicko2) Record(a, b string, outcome Outcome) {
	pa, pb := g.player(a), g.player(b)
	// Both updates use the pre-game values of the opponent.
	na := updated(*pa, *pb, outcome.Score())
	nb := updated(*pb, *pa, outcome.Invert().Score())
	na.games, nb.games = pa.games+1, pb.games+1
	*pa, *pb = na, nb
}

func gWeight(phi float64) float64 {
	return 1 / math.Sqrt(1+3*phi*phi/(math.Pi*math.Pi))
}

func expected(mu, muOpp, phiOpp float64) float64 {
	return 1 / (1 + math.Exp(-gWeight(phiOpp)*(mu-muOpp)))
}

func updated(p, opp glickoPlayer, score float64) glickoPlayer {
	gw := gWeight(opp.phi)
	e := expected(p.mu, opp.mu, opp.phi)
	v := 1 / (gw * gw * e * (1 - e))
	delta := v * gw * (score - e)

	sigma := newVolatility(p, delta, v)
	phiStar := math.Sqrt(p.phi*p.phi + sigma*sigma)
	phi := 1 / math.Sqrt(1/(phiStar*phiStar)+1/v)
	mu := p.mu + phi*phi*gw*(score-e)

	return glickoPlayer{mu: mu, phi: phi, sigma: sigma}
}

// newVolatility runs the Illinois-method iteration from the Glicko-2
// paper to solve for the post-game volatility.
func newVolatility(p glickoPlayer, delta, v float64) float64 {
	a := math.Log(p.sigma * p.sigma)
	phi2 := p.phi * p.phi

	f := func(x float64) float64 {
		ex := math.Exp(x)
		num := ex * (delta*delta - phi2 - v - ex)
		den := 2 * (phi2 + v + ex) * (phi2 + v + ex)
		return num/den - (x-a)/(glickoTau*glickoTau)
	}

	lo := a
	var hi float64
	if delta*delta > phi2+v {
		hi = math.Log(delta*delta - phi2 - v)
	} else {
		k := 1.0
		for f(a-k*glickoTau) < 0 {
			k++
		}
		hi = a - k*glickoTau
		lo, hi = hi, a
	}

	flo, fhi := f(lo), f(hi)
	for i := 0; i < glickoMaxIters && math.Abs(hi-lo) > glickoEpsilon; i++ {
		mid := lo + (lo-hi)*flo/(fhi-flo)
		fmid := f(mid)
		if fmid*fhi <= 0 {
			lo, flo = hi, fhi
		} else {
			flo /= 2
		}
		hi, fhi = mid, fmid
	}
	return math.Exp(lo / 2)
}

func (g *Glicko2) Table() []Standing {
	var table []Standing
	for name, p := range g.players {
		table = append(table, Standing{
			Player: name,
			Rating: glickoBase + glickoScale*p.mu,
			Games:  p.games,
		})
	}
	return sortStandings(table)
}
