package ratings

import "math"

const (
	eloBase = 1500.0
	eloKMax = 32.0
	eloKMin = 10.0
)

type eloPlayer struct {
	rating float64
	games  int
}

// Elo is classic Elo with a K factor that decays by one per game played,
// from 32 down to 10, so new players move fast and veterans settle.
type Elo struct {
	players map[string]*eloPlayer
}

func NewElo() *Elo {
	return &Elo{players: make(map[string]*eloPlayer)}
}

func (*Elo) Name() string { return "elo" }

func (e *Elo) player(name string) *eloPlayer {
	p, ok := e.players[name]
	if !ok {
		p = &eloPlayer{rating: eloBase}
		e.players[name] = p
	}
	return p
}

func (e *Elo) k(p *eloPlayer) float64 {
	k := eloKMax - float64(p.games)
	if k < eloKMin {
		k = eloKMin
	}
	return k
}

func (e *Elo) Record(a, b string, outcome Outcome) {
	pa, pb := e.player(a), e.player(b)
	expected := 1 / (1 + math.Pow(10, (pb.rating-pa.rating)/400))

	pa.rating += e.k(pa) * (outcome.Score() - expected)
	pb.rating += e.k(pb) * (outcome.Invert().Score() - (1 - expected))
	pa.games++
	pb.games++
}

func (e *Elo) Table() []Standing {
	var table []Standing
	for name, p := range e.players {
		table = append(table, Standing{Player: name, Rating: p.rating, Games: p.games})
	}
	return sortStandings(table)
}
