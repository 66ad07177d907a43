package a

type Ints []int

func (s Ints) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

func swap(a, b *int) { *a, *b = *b, *a }

func elements(c Ints, i, j int) {
	swap(&c[i], &c[j]) // want "overlapping accesses to parameter 'c'; modification requires exclusive access"
}

func parens(c Ints, i, j int) {
	swap(&c[i], &(c)[j]) // want "overlapping accesses to parameter 'c'; modification requires exclusive access"
}

func plain(c []int, i, j int) {
	swap(&c[i], &c[j]) // want "overlapping accesses to parameter 'c'; modification requires exclusive access"
}

func other(c, d Ints, i, j int) {
	swap(&c[i], &d[j])
}
