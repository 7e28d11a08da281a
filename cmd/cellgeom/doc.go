// 13 apr 2021

/*
Cellgeom prints the translation vectors and the orthogonalisation and
fractionalisation matrices of a crystallographic unit cell.

The lattice parameters are given as flags. Angles are given in degrees
on the command line, since that is what crystallographic files carry,
and converted to radians before they get anywhere near the library.

Usage:
	cellgeom -a 5 -b 5 -c 5 [flags]

The flags are:
	-a, -b, -c length
		Cell lengths.
	-alpha, -beta, -gamma angle
		Cell angles in degrees. Default 90.
	-frac x,y,z
		Also map this fractional coordinate to cartesian and back.
*/
package main
