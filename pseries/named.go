package pseries

// NthPower returns the series coeff*x^n: zero below index n, coeff at
// index n, zero above. NthPower(0, c) is the constant series c;
// NthPower(1, 1) is the indeterminate x itself.
func NthPower(n int, coeff *Rational) *Series {
	i := 0
	return newSeriesFromProducer(func() (*Rational, bool) {
		if i < n {
			i++
			return zeroRat(), true
		}
		if i == n {
			i++
			return coeff, true
		}
		return nil, false
	})
}

// X returns the indeterminate series 0, 1, 0, 0, ....
func X() *Series {
	return NthPower(1, oneRat())
}

// One returns the constant series 1, 0, 0, ....
func One() *Series {
	return NthPower(0, oneRat())
}

// ConstSeries returns the series with every coefficient equal to c; the
// series representation of 1/(1-x) scaled by c.
func ConstSeries(c *Rational) *Series {
	return FromFunc(func(n int) *Rational { return c })
}

// AltConstSeries returns the alternating-sign constant series
// c, -c, c, -c, ...; the series representation of c/(1+x).
func AltConstSeries(c *Rational) *Series {
	return FromFunc(func(n int) *Rational {
		if n%2 == 0 {
			return c
		}
		return negRat(c)
	})
}

// NSeries returns the series of the natural numbers, 0, 1, 2, 3, ....
func NSeries() *Series {
	return FromFunc(func(n int) *Rational { return ratFromInt(int64(n)) })
}

// Harmonic returns the harmonic series 0, 1, 1/2, 1/3, ..., the series
// representation of -log(1-x).
func Harmonic() *Series {
	return FromFunc(func(n int) *Rational {
		if n == 0 {
			return zeroRat()
		}
		return quoRat(oneRat(), ratFromInt(int64(n)))
	})
}

// AltHarmonic returns the alternating harmonic series 0, 1, -1/2, 1/3,
// ..., the series representation of log(1+x).
func AltHarmonic() *Series {
	return FromFunc(func(n int) *Rational {
		if n == 0 {
			return zeroRat()
		}
		v := quoRat(oneRat(), ratFromInt(int64(n)))
		if n%2 == 0 {
			return negRat(v)
		}
		return v
	})
}

// Exp returns the series for e^x. Built by delegating to Exponential on
// the indeterminate x, rather than duplicating its self-referential
// integral construction.
func Exp() *Series {
	e, err := X().Exponential()
	if err != nil {
		panic("pseries: unreachable exponential failure on the indeterminate: " + err.Error())
	}
	return e
}

// Sin returns the series for sin(x). Constructed as the unique solution
// of y'' = -y with y(0) = 0, y'(0) = 1, i.e. SIN = I(I(-SIN, 1), 0) —
// self-referential, so SIN's own pointer is captured before its stream
// is attached (the late-binding slot pattern), and the formula that
// reads it (Neg, Integral) is built lazily inside the producer rather
// than at construction time, since both eagerly open a cursor on their
// receiver.
func Sin() *Series {
	var (
		initialized bool
		restCur     *seriesCursor
	)
	sin := newSeries()
	sin.stream = newMemoStream(func() (*Rational, bool) {
		if !initialized {
			integral := sin.Neg().Integral(oneRat()).Integral(zeroRat())
			restCur = integral.cursor()
			initialized = true
		}
		return restCur.next(), true
	})
	return sin
}

// Cos returns the series for cos(x). Constructed as the unique solution
// of y'' = -y with y(0) = 1, y'(0) = 0, i.e. COS = I(I(-COS, 0), 1).
func Cos() *Series {
	var (
		initialized bool
		restCur     *seriesCursor
	)
	cos := newSeries()
	cos.stream = newMemoStream(func() (*Rational, bool) {
		if !initialized {
			integral := cos.Neg().Integral(zeroRat()).Integral(oneRat())
			restCur = integral.cursor()
			initialized = true
		}
		return restCur.next(), true
	})
	return cos
}

// Tan returns the series for tan(x). Constructed as the unique solution
// of y' = 1 + y^2 with y(0) = 0, i.e. TAN = I(1 + TAN*TAN, 0).
func Tan() *Series {
	tan := newSeries()
	integrand := One().Add(tan.Mul(tan))
	integral := integrand.Integral(zeroRat())
	cur := integral.cursor()
	tan.stream = newMemoStream(func() (*Rational, bool) {
		return cur.next(), true
	})
	return tan
}

// Sec returns the series for sec(x) = 1/cos(x).
func Sec() *Series {
	sec, err := Cos().Reciprocal()
	if err != nil {
		panic("pseries: unreachable reciprocal failure on cos(x): " + err.Error())
	}
	return sec
}

// ArcSin returns the series for arcsin(x), the compositional inverse of
// sin(x).
func ArcSin() *Series {
	a, err := Sin().Inverse()
	if err != nil {
		panic("pseries: unreachable inverse failure on sin(x): " + err.Error())
	}
	return a
}

// ArcTan returns the series for arctan(x), computed directly as the
// integral of 1/(1+x^2) rather than by inverting tan(x).
func ArcTan() *Series {
	onePlusX2 := One().Add(NthPower(2, oneRat()))
	quotient, err := One().Div(onePlusX2)
	if err != nil {
		panic("pseries: unreachable division failure on 1/(1+x^2): " + err.Error())
	}
	return quotient.Integral(zeroRat())
}

// Sinh returns the series for sinh(x). Constructed as the unique
// solution of y'' = y with y(0) = 0, y'(0) = 1, i.e. SINH = I(I(SINH, 1), 0).
func Sinh() *Series {
	var (
		initialized bool
		restCur     *seriesCursor
	)
	sinh := newSeries()
	sinh.stream = newMemoStream(func() (*Rational, bool) {
		if !initialized {
			integral := sinh.Integral(oneRat()).Integral(zeroRat())
			restCur = integral.cursor()
			initialized = true
		}
		return restCur.next(), true
	})
	return sinh
}

// Cosh returns the series for cosh(x). Constructed as the unique
// solution of y'' = y with y(0) = 1, y'(0) = 0, i.e. COSH = I(I(COSH, 0), 1).
func Cosh() *Series {
	var (
		initialized bool
		restCur     *seriesCursor
	)
	cosh := newSeries()
	cosh.stream = newMemoStream(func() (*Rational, bool) {
		if !initialized {
			integral := cosh.Integral(zeroRat()).Integral(oneRat())
			restCur = integral.cursor()
			initialized = true
		}
		return restCur.next(), true
	})
	return cosh
}

// Tanh returns the series for tanh(x). Constructed as the unique
// solution of y' = 1 - y^2 with y(0) = 0, i.e. TANH = I(1 - TANH*TANH, 0).
func Tanh() *Series {
	tanh := newSeries()
	integrand := One().Sub(tanh.Mul(tanh))
	integral := integrand.Integral(zeroRat())
	cur := integral.cursor()
	tanh.stream = newMemoStream(func() (*Rational, bool) {
		return cur.next(), true
	})
	return tanh
}

// Sech returns the series for sech(x) = 1/cosh(x).
func Sech() *Series {
	s, err := Cosh().Reciprocal()
	if err != nil {
		panic("pseries: unreachable reciprocal failure on cosh(x): " + err.Error())
	}
	return s
}

// ArcSinh returns the series for arcsinh(x), the compositional inverse
// of sinh(x).
func ArcSinh() *Series {
	a, err := Sinh().Inverse()
	if err != nil {
		panic("pseries: unreachable inverse failure on sinh(x): " + err.Error())
	}
	return a
}

// ArcTanh returns the series for arctanh(x), computed directly as the
// integral of 1/(1-x^2) rather than by inverting tanh(x).
func ArcTanh() *Series {
	oneMinusX2 := One().Sub(NthPower(2, oneRat()))
	quotient, err := One().Div(oneMinusX2)
	if err != nil {
		panic("pseries: unreachable division failure on 1/(1-x^2): " + err.Error())
	}
	return quotient.Integral(zeroRat())
}
