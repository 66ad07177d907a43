package a

var g int

func load(src, dst *int) { *dst = *src }

func sum(a, b *int) int { return *a + *b }

func three(a, b, c *int) { *a, *b, *c = *c, *a, *b }

func globals() {
	load(&g, &g) // want "overlapping accesses to var 'g'; modification requires exclusive access"
}

func reads() int {
	return sum(&g, &g)
}

type Pair struct{ a, b int }

func (p *Pair) add(d *int) { p.a += *d }

func fields(p *Pair) {
	swap(&p.a, &p.a) // want "overlapping accesses to field 'a'; modification requires exclusive access"
	swap(&p.a, &p.b)
}

func receiver() int {
	var v Pair
	v.add(&v.b) // want "overlapping accesses to var 'v'; modification requires exclusive access"

	return v.a
}

func dedup() int {
	x := 1
	three(&x, &x, &x) // want "overlapping accesses to var 'x'; modification requires exclusive access"

	return x
}

func sequential() int {
	x, y := 1, 2
	swap(&x, &y)
	swap(&y, &x)

	return x + y
}

func branches(cond bool) int {
	x := 1
	if cond {
		swap(&x, &x) // want "overlapping accesses to var 'x'; modification requires exclusive access"
	} else {
		load(&x, &x) // want "overlapping accesses to var 'x'; modification requires exclusive access"
	}

	return x
}

func closure() func() int {
	x := 1

	return func() int {
		swap(&x, &x) // want "overlapping accesses to var 'x'; modification requires exclusive access"

		return x
	}
}

//nolint:exclusivity
func ignored(c Ints) {
	swap(&c[0], &c[1])
	func() { swap(&c[0], &c[1]) }()
}

func ignoredLine(c Ints) {
	swap(&c[0], &c[1]) //nolint:exclusivity
}
