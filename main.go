package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/nusense/larsim/config"
	"github.com/nusense/larsim/geometry"
	"github.com/nusense/larsim/quanta"
	"github.com/nusense/larsim/sim"
)

func main() {
	conf := config.Read()
	initLogger(conf)
	log.Debugf("Config: %#v", conf)

	params, err := config.LoadParams(conf.ParamsFile)
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
	log.Debugf("Params: %#v", params)

	det := params.DetectorState()
	calc, err := quanta.New(params.CalculatorConfig(), det, params.SpaceCharge())
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}

	log.Infof("Detector state: %.3g kV/cm, %.4g K, %.4g g/cm^3", det.Efield, det.Temperature, det.Density)

	for _, edep := range sampleDeposits() {
		result := calc.Calculate(det, edep)
		log.Infof("%-13s E=%7.3f MeV ds=%5.2f cm -> %11.1f electrons %11.1f photons (fast fraction %.2f)",
			edep.Particle, edep.Energy, edep.StepLength,
			result.NumElectrons, result.NumPhotons, result.ScintYieldRatio)
	}
}

// sampleDeposits covers the main deposit topologies: a minimum-ionizing
// muon step, a stopping proton, a heavily quenched alpha and a point-like
// gamma conversion.
func sampleDeposits() []sim.EnergyDeposit {
	return []sim.EnergyDeposit{
		{Energy: 0.63, StepLength: 0.3, Particle: sim.MuonMinus, MidPoint: geometry.Point{X: 50, Y: 0, Z: 100}},
		{Energy: 2.1, StepLength: 0.1, Particle: sim.Proton, MidPoint: geometry.Point{X: 80, Y: 20, Z: 150}},
		{Energy: 5.5, StepLength: 0.005, Particle: sim.Alpha, MidPoint: geometry.Point{X: 10, Y: -40, Z: 30}},
		{Energy: 1.0, StepLength: 0, Particle: sim.Gamma, MidPoint: geometry.Point{X: 120, Y: 60, Z: 400}},
	}
}

func initLogger(conf config.Config) {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	level, err := log.ParseLevel(conf.LoggingLevel)
	if err != nil {
		panic(err)
	}
	log.SetLevel(level)
}
